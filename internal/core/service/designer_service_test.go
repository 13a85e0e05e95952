package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

type stubImageStorage struct {
	storeFn func(ctx context.Context, filename string, content io.Reader) (string, error)
}

func (s *stubImageStorage) Store(ctx context.Context, filename string, content io.Reader) (string, error) {
	if s.storeFn == nil {
		return "https://cdn.example/" + filename, nil
	}
	return s.storeFn(ctx, filename, content)
}

func TestDesignerService_CreateForUser_LinksAccount(t *testing.T) {
	var linkedUser *domain.User
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "alice@example.com", Firstname: "Alice", Lastname: "Martin"}, nil
		},
		updateFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			linkedUser = user
			return user, nil
		},
	}
	designers := &stubDesignerRepo{
		createFn: func(_ context.Context, d *domain.Designer) (*domain.Designer, error) {
			out := *d
			out.ID = "d1"
			return &out, nil
		},
	}
	svc := NewDesignerService(designers, users, &stubImageStorage{}, zerolog.Nop())

	created, err := svc.CreateForUser(context.Background(), "u1", &domain.Designer{Biography: "textile designer", Email: "spoofed@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// identity comes from the account, not from the payload
	if created.Email != "alice@example.com" || created.Firstname != "Alice" {
		t.Fatalf("identity not taken from account: %+v", created)
	}
	if linkedUser == nil || linkedUser.DesignerID != "d1" {
		t.Fatal("account not linked to the new profile")
	}
}

func TestDesignerService_CreateForUser_SecondProfileRejected(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, DesignerID: "d1"}, nil
		},
	}
	svc := NewDesignerService(&stubDesignerRepo{}, users, &stubImageStorage{}, zerolog.Nop())

	if _, err := svc.CreateForUser(context.Background(), "u1", &domain.Designer{}); !errors.Is(err, domain.ErrDesignerAssigned) {
		t.Fatalf("expected ErrDesignerAssigned, got %v", err)
	}
}

func TestDesignerService_Transfer_ClearsCreatedBy(t *testing.T) {
	var updatedDesigner *domain.Designer
	var updatedUser *domain.User
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
		updateFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			updatedUser = user
			return user, nil
		},
	}
	designers := &stubDesignerRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Designer, error) {
			return &domain.Designer{ID: id, CreatedBy: "admin1"}, nil
		},
		updateFn: func(_ context.Context, d *domain.Designer) (*domain.Designer, error) {
			updatedDesigner = d
			return d, nil
		},
	}
	svc := NewDesignerService(designers, users, &stubImageStorage{}, zerolog.Nop())

	if err := svc.Transfer(context.Background(), "u1", "d1"); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if updatedDesigner.CreatedBy != "" {
		t.Fatal("created_by tag not cleared on transfer")
	}
	if updatedUser.DesignerID != "d1" {
		t.Fatal("user not linked to the transferred profile")
	}
}

func TestDesignerService_Transfer_UserAlreadyOwnsProfile(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, DesignerID: "existing"}, nil
		},
	}
	designers := &stubDesignerRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Designer, error) {
			return &domain.Designer{ID: id}, nil
		},
	}
	svc := NewDesignerService(designers, users, &stubImageStorage{}, zerolog.Nop())

	if err := svc.Transfer(context.Background(), "u1", "d1"); !errors.Is(err, domain.ErrDesignerAssigned) {
		t.Fatalf("expected ErrDesignerAssigned, got %v", err)
	}
}

func TestDesignerService_AddWorks_CapEnforced(t *testing.T) {
	svc := NewDesignerService(&stubDesignerRepo{}, &stubUserRepo{}, &stubImageStorage{}, zerolog.Nop())

	uploads := make([]ports.Upload, domain.MaxWorksPerUpload+1)
	for i := range uploads {
		uploads[i] = ports.Upload{Filename: fmt.Sprintf("w%d.png", i), Content: strings.NewReader("img")}
	}

	if _, err := svc.AddWorks(context.Background(), "d1", uploads); !errors.Is(err, domain.ErrTooManyWorks) {
		t.Fatalf("expected ErrTooManyWorks, got %v", err)
	}
}

func TestDesignerService_AddWorks_StoresAndAppends(t *testing.T) {
	designers := &stubDesignerRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Designer, error) {
			return &domain.Designer{ID: id, MajorWorks: []string{"https://cdn.example/old.png"}}, nil
		},
		updateFn: func(_ context.Context, d *domain.Designer) (*domain.Designer, error) {
			return d, nil
		},
	}
	svc := NewDesignerService(designers, &stubUserRepo{}, &stubImageStorage{}, zerolog.Nop())

	uploads := []ports.Upload{
		{Filename: "a.png", Content: strings.NewReader("img")},
		{Filename: "b.png", Content: strings.NewReader("img")},
	}
	got, err := svc.AddWorks(context.Background(), "d1", uploads)
	if err != nil {
		t.Fatalf("add works: %v", err)
	}
	if len(got.MajorWorks) != 3 {
		t.Fatalf("expected 3 works, got %v", got.MajorWorks)
	}
}

func TestDesignerService_DeleteForUser_ChecksPairing(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, DesignerID: "d1"}, nil
		},
	}
	svc := NewDesignerService(&stubDesignerRepo{}, users, &stubImageStorage{}, zerolog.Nop())

	if err := svc.DeleteForUser(context.Background(), "u1", "someone-elses"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDesignerService_Events(t *testing.T) {
	stored := &domain.Designer{ID: "d1", Events: []domain.DesignerEvent{{ID: "e1", Title: "expo"}}}
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, DesignerID: "d1"}, nil
		},
	}
	designers := &stubDesignerRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Designer, error) {
			snapshot := *stored
			return &snapshot, nil
		},
		updateFn: func(_ context.Context, d *domain.Designer) (*domain.Designer, error) {
			stored = d
			return d, nil
		},
	}
	svc := NewDesignerService(designers, users, &stubImageStorage{}, zerolog.Nop())
	ctx := context.Background()

	got, err := svc.AddEvent(ctx, "u1", domain.DesignerEvent{Title: "vernissage"})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if len(got.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got.Events))
	}
	if got.Events[1].ID == "" {
		t.Fatal("new event did not receive an id")
	}

	if _, err := svc.ModifyEvent(ctx, "u1", domain.DesignerEvent{ID: "missing", Title: "x"}); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	got, err = svc.DeleteEvent(ctx, "u1", "e1")
	if err != nil {
		t.Fatalf("delete event: %v", err)
	}
	for _, ev := range got.Events {
		if ev.ID == "e1" {
			t.Fatal("event e1 still present after delete")
		}
	}
}
