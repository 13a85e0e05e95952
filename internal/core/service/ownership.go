package service

import (
	"context"
	"errors"

	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// OwnershipStore answers the authorization evaluator's ownership queries
// from the user collection: a designer or company is owned by the account
// whose record links to it. A missing user or missing link is reported as
// not-owned, never as a distinct error.
type OwnershipStore struct {
	users ports.UserRepository
}

func NewOwnershipStore(users ports.UserRepository) *OwnershipStore {
	return &OwnershipStore{users: users}
}

func (s *OwnershipStore) IsOwner(ctx context.Context, resource auth.Resource, subjectID string) (bool, error) {
	if resource.ID == "" || subjectID == "" {
		return false, nil
	}

	// the user resource is owned by the matching account itself
	if resource.Kind == auth.ResourceUser {
		return resource.ID == subjectID, nil
	}

	user, err := s.users.FindByID(ctx, subjectID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch resource.Kind {
	case auth.ResourceDesigner:
		return user.DesignerID == resource.ID, nil
	case auth.ResourceCompany:
		return user.CompanyID == resource.ID, nil
	}
	return false, nil
}
