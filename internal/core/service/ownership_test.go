package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

func TestOwnershipStore_DesignerAndCompanyLinks(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: "u1", DesignerID: "d1", CompanyID: "c1"}, nil
		},
	}
	store := NewOwnershipStore(users)
	ctx := context.Background()

	cases := []struct {
		name     string
		resource auth.Resource
		subject  string
		want     bool
	}{
		{"own designer", auth.Resource{Kind: auth.ResourceDesigner, ID: "d1"}, "u1", true},
		{"other designer", auth.Resource{Kind: auth.ResourceDesigner, ID: "d2"}, "u1", false},
		{"own company", auth.Resource{Kind: auth.ResourceCompany, ID: "c1"}, "u1", true},
		{"other company", auth.Resource{Kind: auth.ResourceCompany, ID: "c2"}, "u1", false},
		{"own user record", auth.Resource{Kind: auth.ResourceUser, ID: "u1"}, "u1", true},
		{"other user record", auth.Resource{Kind: auth.ResourceUser, ID: "u2"}, "u1", false},
		{"empty resource id", auth.Resource{Kind: auth.ResourceDesigner, ID: ""}, "u1", false},
		{"empty subject", auth.Resource{Kind: auth.ResourceDesigner, ID: "d1"}, "", false},
		// unknown subject must read as not-owned, not as an error
		{"unknown subject", auth.Resource{Kind: auth.ResourceDesigner, ID: "d1"}, "ghost", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.IsOwner(ctx, tc.resource, tc.subject)
			if err != nil {
				t.Fatalf("IsOwner: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestOwnershipStore_WrappedNotFoundReadsAsNotOwned(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(context.Context, string) (*domain.User, error) {
			return nil, fmt.Errorf("find user: %w", domain.ErrUserNotFound)
		},
	}
	store := NewOwnershipStore(users)

	owned, err := store.IsOwner(context.Background(),
		auth.Resource{Kind: auth.ResourceDesigner, ID: "d1"}, "ghost")
	if err != nil {
		t.Fatalf("IsOwner: %v", err)
	}
	if owned {
		t.Fatal("wrapped not-found must read as not-owned")
	}
}

func TestOwnershipStore_RepositoryFailureSurfaces(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(context.Context, string) (*domain.User, error) {
			return nil, errors.New("mongo: connection reset")
		},
	}
	store := NewOwnershipStore(users)

	owns, err := store.IsOwner(context.Background(), auth.Resource{Kind: auth.ResourceDesigner, ID: "d1"}, "u1")
	if owns {
		t.Fatal("ownership granted while the store is down")
	}
	if err == nil {
		t.Fatal("expected the lookup failure to surface")
	}
}
