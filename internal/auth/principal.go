package auth

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// Principal is the authenticated identity for the lifetime of one request.
// It is built once by the request authenticator from a valid token and never
// mutated; there is no process-wide "current user".
type Principal struct {
	SubjectID string
	Roles     []domain.Role
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role domain.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Authorities returns the wire-format role labels for the principal, in the
// order they appear in the token.
func (p Principal) Authorities() []string {
	labels := make([]string, len(p.Roles))
	for i, r := range p.Roles {
		labels[i] = r.Authority()
	}
	return labels
}

type principalKey struct{}

// WithPrincipal attaches the principal to the request context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal attached by the request
// authenticator, if the request was authenticated.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
