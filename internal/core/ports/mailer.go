package ports

import "context"

// ContactMessage is a contact-form submission relayed to the platform inbox.
type ContactMessage struct {
	Email       string
	Subject     string
	Reason      string
	Description string
}

// Mailer sends outbound application email.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
	SendContact(ctx context.Context, msg ContactMessage) error
}
