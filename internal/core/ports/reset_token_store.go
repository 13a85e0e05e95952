package ports

import (
	"context"
	"time"
)

// ResetTokenStore holds short-lived password-reset tokens. Lookup of an
// unknown or expired token must return domain.ErrResetTokenInvalid.
type ResetTokenStore interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (userID string, err error)
	Delete(ctx context.Context, token string) error
}
