package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

type UserService interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Friends(ctx context.Context, userID string) ([]domain.Designer, error)
	AddFriend(ctx context.Context, userID, friendID string) (*domain.User, error)
	RemoveFriend(ctx context.Context, userID, friendID string) (*domain.User, error)
	AccountType(ctx context.Context, userID string) (domain.AccountType, error)
}
