package service

import (
	"context"
	"time"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// UserService manages user accounts and their designer friend list.
type UserService struct {
	users     ports.UserRepository
	designers ports.DesignerRepository
}

func NewUserService(users ports.UserRepository, designers ports.DesignerRepository) *UserService {
	return &UserService{users: users, designers: designers}
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) AccountType(ctx context.Context, userID string) (domain.AccountType, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.AccountNone, err
	}
	return user.AccountType(), nil
}

// Friends resolves the user's friend IDs to designer profiles. Dangling IDs
// (profile deleted since the friendship was made) are skipped.
func (s *UserService) Friends(ctx context.Context, userID string) ([]domain.Designer, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]domain.Designer, 0, len(user.FriendsID))
	for _, id := range user.FriendsID {
		designer, err := s.designers.FindByID(ctx, id)
		if err == domain.ErrDesignerNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		friends = append(friends, *designer)
	}
	return friends, nil
}

func (s *UserService) AddFriend(ctx context.Context, userID, friendID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, id := range user.FriendsID {
		if id == friendID {
			return user, nil
		}
	}
	user.FriendsID = append(user.FriendsID, friendID)
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.FriendsID[:0]
	for _, id := range user.FriendsID {
		if id != friendID {
			kept = append(kept, id)
		}
	}
	user.FriendsID = kept
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}
