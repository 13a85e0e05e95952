package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// DesignerRepository defines the interface for designer profile persistence.
type DesignerRepository interface {
	Create(ctx context.Context, designer *domain.Designer) (*domain.Designer, error)
	Update(ctx context.Context, designer *domain.Designer) (*domain.Designer, error)
	FindByID(ctx context.Context, id string) (*domain.Designer, error)
	FindAll(ctx context.Context) ([]domain.Designer, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]domain.Designer, error)
	FindByCreatedBy(ctx context.Context, adminID string) ([]domain.Designer, error)
	Delete(ctx context.Context, id string) error
}
