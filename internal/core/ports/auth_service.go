package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// SessionInfo is what /auth/me returns about the current principal. Roles
// carry the wire-format authority labels the front end expects.
type SessionInfo struct {
	UserID      string             `json:"user_id"`
	Firstname   string             `json:"firstname"`
	Lastname    string             `json:"lastname"`
	Roles       []string           `json:"roles"`
	AccountType domain.AccountType `json:"account_type"`
	DesignerID  string             `json:"designer_id,omitempty"`
	CompanyID   string             `json:"company_id,omitempty"`
}

type AuthService interface {
	Register(ctx context.Context, email, password, firstname, lastname string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Session(ctx context.Context, userID string) (*SessionInfo, error)
}
