package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

type stubCompanyRepo struct {
	createFn   func(ctx context.Context, company *domain.Company) (*domain.Company, error)
	updateFn   func(ctx context.Context, company *domain.Company) (*domain.Company, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Company, error)
	findAllFn  func(ctx context.Context) ([]domain.Company, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubCompanyRepo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	return s.createFn(ctx, c)
}

func (s *stubCompanyRepo) Update(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	return s.updateFn(ctx, c)
}

func (s *stubCompanyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubCompanyRepo) FindAll(ctx context.Context) ([]domain.Company, error) {
	return s.findAllFn(ctx)
}

func (s *stubCompanyRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func confidentialCompany() *domain.Company {
	return &domain.Company{
		ID:               "c1",
		LegalName:        "Atelier Wax",
		Email:            "contact@wax.example",
		SiretNumber:      "123 456 789 00010",
		Revenue:          "500k",
		EmployeesID:      []string{"u1", "u2"},
		FinancialSupport: true,
		City:             "Dakar",
	}
}

func TestCompanyService_SummariesHideConfidentialFields(t *testing.T) {
	companies := &stubCompanyRepo{
		findAllFn: func(context.Context) ([]domain.Company, error) {
			return []domain.Company{*confidentialCompany()}, nil
		},
	}
	svc := NewCompanyService(companies, &stubUserRepo{}, &stubImageStorage{}, zerolog.Nop())

	summaries, err := svc.AllSummaries(context.Background())
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].LegalName != "Atelier Wax" || summaries[0].City != "Dakar" {
		t.Fatalf("public fields lost: %+v", summaries[0])
	}
}

func TestCompanyService_FullViewKeepsConfidentialFields(t *testing.T) {
	companies := &stubCompanyRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Company, error) {
			return confidentialCompany(), nil
		},
	}
	svc := NewCompanyService(companies, &stubUserRepo{}, &stubImageStorage{}, zerolog.Nop())

	full, err := svc.ByID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if full.SiretNumber == "" || full.Revenue == "" || !full.FinancialSupport {
		t.Fatalf("confidential fields missing from full view: %+v", full)
	}

	summary, err := svc.SummaryByID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.LegalName != full.LegalName {
		t.Fatal("summary lost public fields")
	}
}

func TestCompanyService_Delete_ClearsUserLink(t *testing.T) {
	deleted := ""
	companies := &stubCompanyRepo{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	var updated *domain.User
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, CompanyID: "c1"}, nil
		},
		updateFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			updated = user
			return user, nil
		},
	}
	svc := NewCompanyService(companies, users, &stubImageStorage{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "u1", "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != "c1" {
		t.Fatalf("company %q deleted, want c1", deleted)
	}
	if updated == nil || updated.CompanyID != "" {
		t.Fatal("user link not cleared")
	}
}
