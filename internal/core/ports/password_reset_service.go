package ports

import "context"

type PasswordResetService interface {
	// Request generates a reset token for the account and emails the link.
	Request(ctx context.Context, email string) error
	// Reset validates the token and replaces the account password.
	Reset(ctx context.Context, token, newPassword string) error
}
