// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// SMTPMailer sends mail through a plain SMTP relay with optional auth.
type SMTPMailer struct {
	addr      string
	auth      smtp.Auth
	from      string
	contactTo string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer builds a mailer for the given relay. Username may be empty,
// in which case no authentication is attempted.
func NewSMTPMailer(host string, port int, username, password, from, contactTo string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr:      fmt.Sprintf("%s:%d", host, port),
		auth:      auth,
		from:      from,
		contactTo: contactTo,
	}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	body := "Bonjour,\r\n\r\n" +
		"Une demande de réinitialisation de mot de passe a été faite pour votre compte.\r\n" +
		"Cliquez sur le lien suivant pour choisir un nouveau mot de passe (valable 1 heure) :\r\n\r\n" +
		resetLink + "\r\n\r\n" +
		"Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.\r\n"
	return m.send(to, "Réinitialisation de votre mot de passe", body)
}

func (m *SMTPMailer) SendContact(ctx context.Context, msg ports.ContactMessage) error {
	body := "Message reçu via le formulaire de contact\r\n\r\n" +
		"De : " + msg.Email + "\r\n" +
		"Motif : " + msg.Reason + "\r\n\r\n" +
		msg.Description + "\r\n"
	return m.send(m.contactTo, "Contact : "+msg.Subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
