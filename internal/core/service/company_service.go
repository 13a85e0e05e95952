package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// CompanyService manages company records. Public reads go through the
// summary projection; the full record, confidential fields included, is only
// served behind an owner-or-admin guard.
type CompanyService struct {
	companies ports.CompanyRepository
	users     ports.UserRepository
	storage   ports.ImageStorage
	log       zerolog.Logger
}

func NewCompanyService(
	companies ports.CompanyRepository,
	users ports.UserRepository,
	storage ports.ImageStorage,
	log zerolog.Logger,
) *CompanyService {
	return &CompanyService{companies: companies, users: users, storage: storage, log: log}
}

func (s *CompanyService) AllSummaries(ctx context.Context) ([]domain.CompanySummary, error) {
	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CompanySummary, len(companies))
	for i := range companies {
		summaries[i] = companies[i].Summary()
	}
	return summaries, nil
}

func (s *CompanyService) SummaryByID(ctx context.Context, id string) (*domain.CompanySummary, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := company.Summary()
	return &summary, nil
}

func (s *CompanyService) ByID(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.FindByID(ctx, id)
}

func (s *CompanyService) ByUserID(ctx context.Context, userID string) (*domain.Company, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CompanyID == "" {
		return nil, domain.ErrCompanyNotFound
	}
	return s.companies.FindByID(ctx, user.CompanyID)
}

// CreateForUser creates a company and links it to the calling user's
// account. The contact email comes from the account.
func (s *CompanyService) CreateForUser(ctx context.Context, userID string, company *domain.Company) (*domain.Company, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	company.Email = user.Email
	company.CreatedAt = now
	company.UpdatedAt = now

	created, err := s.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	user.CompanyID = created.ID
	user.UpdatedAt = now
	if _, err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("company_id", created.ID).Str("user_id", userID).Msg("company created")
	return created, nil
}

func (s *CompanyService) UpdateFields(ctx context.Context, companyID string, patch *domain.Company) (*domain.Company, error) {
	existing, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	existing.Description = patch.Description
	existing.LegalName = patch.LegalName
	existing.SiretNumber = patch.SiretNumber
	existing.PhoneNumber = patch.PhoneNumber
	existing.Sectors = patch.Sectors
	existing.Stage = patch.Stage
	existing.Type = patch.Type
	existing.Revenue = patch.Revenue
	existing.Country = patch.Country
	existing.City = patch.City
	existing.WebsiteURL = patch.WebsiteURL
	existing.EmployeesID = patch.EmployeesID
	existing.FinancialSupport = patch.FinancialSupport
	existing.UpdatedAt = time.Now().UTC()

	return s.companies.Update(ctx, existing)
}

func (s *CompanyService) UpdateLogo(ctx context.Context, companyID string, upload ports.Upload) (*domain.Company, error) {
	return s.updateImage(ctx, companyID, upload, func(c *domain.Company, url string) {
		c.LogoURL = url
	})
}

func (s *CompanyService) UpdateTeamPhoto(ctx context.Context, companyID string, upload ports.Upload) (*domain.Company, error) {
	return s.updateImage(ctx, companyID, upload, func(c *domain.Company, url string) {
		c.TeamPhotoURL = url
	})
}

func (s *CompanyService) updateImage(ctx context.Context, companyID string, upload ports.Upload, set func(*domain.Company, string)) (*domain.Company, error) {
	existing, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.Store(ctx, upload.Filename, upload.Content)
	if err != nil {
		return nil, err
	}

	set(existing, url)
	existing.UpdatedAt = time.Now().UTC()
	return s.companies.Update(ctx, existing)
}

func (s *CompanyService) AddWorks(ctx context.Context, companyID string, uploads []ports.Upload) (*domain.Company, error) {
	existing, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	for _, upload := range uploads {
		url, err := s.storage.Store(ctx, upload.Filename, upload.Content)
		if err != nil {
			return nil, err
		}
		existing.WorksURL = append(existing.WorksURL, url)
	}

	existing.UpdatedAt = time.Now().UTC()
	return s.companies.Update(ctx, existing)
}

func (s *CompanyService) DeleteWork(ctx context.Context, companyID, workURL string) (*domain.Company, error) {
	existing, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := existing.WorksURL[:0]
	for _, url := range existing.WorksURL {
		if url == workURL {
			found = true
			continue
		}
		kept = append(kept, url)
	}
	if !found {
		return nil, domain.ErrWorkNotFound
	}

	existing.WorksURL = kept
	existing.UpdatedAt = time.Now().UTC()
	return s.companies.Update(ctx, existing)
}

// Delete removes the company and clears the calling user's link to it.
func (s *CompanyService) Delete(ctx context.Context, userID, companyID string) error {
	if err := s.companies.Delete(ctx, companyID); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.CompanyID == companyID {
		user.CompanyID = ""
		user.UpdatedAt = time.Now().UTC()
		if _, err := s.users.Update(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
