package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

type CompanyService interface {
	AllSummaries(ctx context.Context) ([]domain.CompanySummary, error)
	SummaryByID(ctx context.Context, id string) (*domain.CompanySummary, error)
	ByID(ctx context.Context, id string) (*domain.Company, error)
	ByUserID(ctx context.Context, userID string) (*domain.Company, error)

	CreateForUser(ctx context.Context, userID string, company *domain.Company) (*domain.Company, error)
	UpdateFields(ctx context.Context, companyID string, patch *domain.Company) (*domain.Company, error)

	UpdateLogo(ctx context.Context, companyID string, upload Upload) (*domain.Company, error)
	UpdateTeamPhoto(ctx context.Context, companyID string, upload Upload) (*domain.Company, error)
	AddWorks(ctx context.Context, companyID string, uploads []Upload) (*domain.Company, error)
	DeleteWork(ctx context.Context, companyID, workURL string) (*domain.Company, error)

	Delete(ctx context.Context, userID, companyID string) error
}
