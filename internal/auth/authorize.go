package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Admit
)

func (d Decision) String() string {
	if d == Admit {
		return "admit"
	}
	return "deny"
}

// ErrStoreUnavailable marks a Deny caused by an ownership lookup failure
// rather than by the rule itself. The client still sees a plain forbidden;
// the flag exists for logs and metrics only.
var ErrStoreUnavailable = errors.New("ownership store unavailable")

// ResourceKind names the kinds of owned records an OwnerOrRole rule can
// point at.
type ResourceKind string

const (
	ResourceDesigner ResourceKind = "designer"
	ResourceCompany  ResourceKind = "company"
	ResourceUser     ResourceKind = "user"
)

// Resource identifies a single owned record.
type Resource struct {
	Kind ResourceKind
	ID   string
}

// OwnershipStore answers whether a resource is linked to a subject.
// Implementations must return (false, nil) when the resource does not exist:
// "not found" and "not owned" are indistinguishable to the caller, so a
// non-owner cannot probe for a resource's existence.
type OwnershipStore interface {
	IsOwner(ctx context.Context, resource Resource, subjectID string) (bool, error)
}

type ruleKind int

const (
	rulePublic ruleKind = iota
	ruleAuthenticated
	ruleRoleRequired
	ruleOwnerOrRole
)

// Rule is one authorization requirement. Build rules with the constructors
// below; the zero value denies everything but Public routes never consult it.
type Rule struct {
	kind     ruleKind
	role     domain.Role
	resource Resource
}

// Public admits every request, authenticated or not.
func Public() Rule {
	return Rule{kind: rulePublic}
}

// Authenticated admits any request carrying a principal.
func Authenticated() Rule {
	return Rule{kind: ruleAuthenticated}
}

// RoleRequired admits a principal carrying the given role.
func RoleRequired(role domain.Role) Rule {
	return Rule{kind: ruleRoleRequired, role: role}
}

// OwnerOrRole admits a principal carrying the role, or one that owns the
// resource according to the ownership store. The role check runs first so
// administrators never trigger a store lookup.
func OwnerOrRole(resource Resource, role domain.Role) Rule {
	return Rule{kind: ruleOwnerOrRole, role: role, resource: resource}
}

// Name returns a short label for the rule kind, used in metrics.
func (r Rule) Name() string {
	switch r.kind {
	case rulePublic:
		return "public"
	case ruleAuthenticated:
		return "authenticated"
	case ruleRoleRequired:
		return "role"
	case ruleOwnerOrRole:
		return "owner_or_role"
	}
	return "unknown"
}

// Evaluator decides ADMIT or DENY for a principal against a rule. It holds
// no mutable state; the only I/O is the ownership lookup, and any failure
// there denies (fail closed).
type Evaluator struct {
	store OwnershipStore
}

// NewEvaluator builds an Evaluator over the given ownership store.
func NewEvaluator(store OwnershipStore) *Evaluator {
	return &Evaluator{store: store}
}

// Decide evaluates the rule for the principal (nil means unauthenticated).
// A non-nil error only ever accompanies Deny and is internal diagnostics;
// callers must not admit on it.
func (e *Evaluator) Decide(ctx context.Context, p *Principal, rule Rule) (Decision, error) {
	switch rule.kind {
	case rulePublic:
		return Admit, nil

	case ruleAuthenticated:
		if p != nil {
			return Admit, nil
		}
		return Deny, nil

	case ruleRoleRequired:
		if p != nil && p.HasRole(rule.role) {
			return Admit, nil
		}
		return Deny, nil

	case ruleOwnerOrRole:
		if p == nil {
			return Deny, nil
		}
		if p.HasRole(rule.role) {
			return Admit, nil
		}
		owns, err := e.store.IsOwner(ctx, rule.resource, p.SubjectID)
		if err != nil {
			return Deny, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if owns {
			return Admit, nil
		}
		return Deny, nil
	}

	return Deny, nil
}
