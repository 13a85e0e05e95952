package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// CompanyRepository defines the interface for company record persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindAll(ctx context.Context) ([]domain.Company, error)
	Delete(ctx context.Context, id string) error
}
