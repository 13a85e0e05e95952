package ports

import (
	"context"
	"io"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// Upload is one multipart file relayed from a handler to a service.
type Upload struct {
	Filename string
	Content  io.Reader
}

type DesignerService interface {
	All(ctx context.Context) ([]domain.Designer, error)
	ByID(ctx context.Context, id string) (*domain.Designer, error)
	ByUserID(ctx context.Context, userID string) (*domain.Designer, error)
	BySpecialty(ctx context.Context, specialty string) ([]domain.Designer, error)

	CreateForUser(ctx context.Context, userID string, designer *domain.Designer) (*domain.Designer, error)
	CreateAsAdmin(ctx context.Context, adminID string, designer *domain.Designer) (*domain.Designer, error)
	CreatedByAdmin(ctx context.Context, adminID string) ([]domain.Designer, error)
	Transfer(ctx context.Context, userID, designerID string) error

	UpdateFields(ctx context.Context, designerID string, patch *domain.Designer) (*domain.Designer, error)
	UpdatePicture(ctx context.Context, designerID string, upload Upload) (*domain.Designer, error)
	AddWorks(ctx context.Context, designerID string, uploads []Upload) (*domain.Designer, error)
	DeleteWork(ctx context.Context, designerID, workURL string) (*domain.Designer, error)

	DeleteForUser(ctx context.Context, userID, designerID string) error
	Delete(ctx context.Context, designerID string) error

	AddEvent(ctx context.Context, userID string, event domain.DesignerEvent) (*domain.Designer, error)
	ModifyEvent(ctx context.Context, userID string, event domain.DesignerEvent) (*domain.Designer, error)
	DeleteEvent(ctx context.Context, userID string, eventID string) (*domain.Designer, error)
}
