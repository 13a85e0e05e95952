package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

type stubOwnershipStore struct {
	isOwnerFn func(ctx context.Context, resource Resource, subjectID string) (bool, error)
	calls     int
}

func (s *stubOwnershipStore) IsOwner(ctx context.Context, resource Resource, subjectID string) (bool, error) {
	s.calls++
	if s.isOwnerFn == nil {
		return false, nil
	}
	return s.isOwnerFn(ctx, resource, subjectID)
}

func TestEvaluator_DecisionTable(t *testing.T) {
	alice := &Principal{SubjectID: "alice", Roles: []domain.Role{domain.RoleUser}}
	admin := &Principal{SubjectID: "root", Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}}
	designer42 := Resource{Kind: ResourceDesigner, ID: "designer42"}

	store := &stubOwnershipStore{
		isOwnerFn: func(_ context.Context, resource Resource, subjectID string) (bool, error) {
			return subjectID == "alice" && resource.ID == "designer42", nil
		},
	}
	evaluator := NewEvaluator(store)

	cases := []struct {
		name      string
		principal *Principal
		rule      Rule
		want      Decision
	}{
		{"public anonymous", nil, Public(), Admit},
		{"public authenticated", alice, Public(), Admit},
		{"authenticated anonymous", nil, Authenticated(), Deny},
		{"authenticated user", alice, Authenticated(), Admit},
		{"role missing", alice, RoleRequired(domain.RoleAdmin), Deny},
		{"role present", admin, RoleRequired(domain.RoleAdmin), Admit},
		{"role anonymous", nil, RoleRequired(domain.RoleAdmin), Deny},
		{"owner admitted", alice, OwnerOrRole(designer42, domain.RoleAdmin), Admit},
		{"non-owner denied", &Principal{SubjectID: "mallory", Roles: []domain.Role{domain.RoleUser}}, OwnerOrRole(designer42, domain.RoleAdmin), Deny},
		{"role bypasses ownership", admin, OwnerOrRole(designer42, domain.RoleAdmin), Admit},
		{"owner rule anonymous", nil, OwnerOrRole(designer42, domain.RoleAdmin), Deny},
		{"missing resource denied", alice, OwnerOrRole(Resource{Kind: ResourceDesigner, ID: "ghost"}, domain.RoleAdmin), Deny},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := evaluator.Decide(context.Background(), tc.principal, tc.rule)
			if err != nil {
				t.Fatalf("decide: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEvaluator_RoleCheckSkipsStoreLookup(t *testing.T) {
	store := &stubOwnershipStore{
		isOwnerFn: func(context.Context, Resource, string) (bool, error) {
			return false, errors.New("store must not be consulted")
		},
	}
	evaluator := NewEvaluator(store)
	admin := &Principal{SubjectID: "root", Roles: []domain.Role{domain.RoleAdmin}}
	rule := OwnerOrRole(Resource{Kind: ResourceCompany, ID: "c1"}, domain.RoleAdmin)

	decision, err := evaluator.Decide(context.Background(), admin, rule)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decision != Admit {
		t.Fatalf("expected Admit, got %v", decision)
	}
	if store.calls != 0 {
		t.Fatalf("ownership store consulted %d times for an admin", store.calls)
	}
}

func TestEvaluator_StoreFailureDeniesClosed(t *testing.T) {
	store := &stubOwnershipStore{
		isOwnerFn: func(context.Context, Resource, string) (bool, error) {
			return false, errors.New("mongo: connection reset")
		},
	}
	evaluator := NewEvaluator(store)
	alice := &Principal{SubjectID: "alice", Roles: []domain.Role{domain.RoleUser}}
	rule := OwnerOrRole(Resource{Kind: ResourceDesigner, ID: "designer42"}, domain.RoleAdmin)

	decision, err := evaluator.Decide(context.Background(), alice, rule)
	if decision != Deny {
		t.Fatalf("expected Deny on store failure, got %v", decision)
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestPrincipal_ContextRoundTrip(t *testing.T) {
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatal("principal found in empty context")
	}

	p := Principal{SubjectID: "alice", Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}}
	ctx := WithPrincipal(context.Background(), p)

	got, ok := PrincipalFromContext(ctx)
	if !ok {
		t.Fatal("principal not found")
	}
	if got.SubjectID != "alice" {
		t.Fatalf("unexpected subject %q", got.SubjectID)
	}
	if !got.HasRole(domain.RoleAdmin) || got.HasRole(domain.Role("GHOST")) {
		t.Fatal("role lookup broken")
	}

	authorities := got.Authorities()
	if len(authorities) != 2 || authorities[0] != "ROLE_USER" || authorities[1] != "ROLE_ADMIN" {
		t.Fatalf("unexpected authorities: %v", authorities)
	}
}
