package service

import (
	"context"
	"testing"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

func TestUserService_Friends_SkipsDanglingProfiles(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, FriendsID: []string{"d1", "gone", "d3"}}, nil
		},
	}
	designers := &stubDesignerRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Designer, error) {
			if id == "gone" {
				return nil, domain.ErrDesignerNotFound
			}
			return &domain.Designer{ID: id}, nil
		},
	}
	svc := NewUserService(users, designers)

	friends, err := svc.Friends(context.Background(), "u1")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("expected deleted profile skipped, got %d friends", len(friends))
	}
	if friends[0].ID != "d1" || friends[1].ID != "d3" {
		t.Fatalf("unexpected friends: %+v", friends)
	}
}

func TestUserService_AddFriend_Idempotent(t *testing.T) {
	updates := 0
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, FriendsID: []string{"d1"}}, nil
		},
		updateFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			updates++
			return user, nil
		},
	}
	svc := NewUserService(users, &stubDesignerRepo{})

	user, err := svc.AddFriend(context.Background(), "u1", "d1")
	if err != nil {
		t.Fatalf("add friend: %v", err)
	}
	if len(user.FriendsID) != 1 {
		t.Fatalf("friend duplicated: %v", user.FriendsID)
	}
	if updates != 0 {
		t.Fatal("no-op add must not write")
	}

	user, err = svc.AddFriend(context.Background(), "u1", "d2")
	if err != nil {
		t.Fatalf("add friend: %v", err)
	}
	if len(user.FriendsID) != 2 || updates != 1 {
		t.Fatalf("new friend not persisted: %v (updates=%d)", user.FriendsID, updates)
	}
}

func TestUserService_RemoveFriend(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, FriendsID: []string{"d1", "d2"}}, nil
		},
		updateFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewUserService(users, &stubDesignerRepo{})

	user, err := svc.RemoveFriend(context.Background(), "u1", "d1")
	if err != nil {
		t.Fatalf("remove friend: %v", err)
	}
	if len(user.FriendsID) != 1 || user.FriendsID[0] != "d2" {
		t.Fatalf("unexpected friends after removal: %v", user.FriendsID)
	}
}
