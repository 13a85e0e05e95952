package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

const resetTokenTTL = time.Hour

// PasswordResetService runs the forgot-password flow: a single-use token
// with a one hour lifetime, delivered by email, stored out of band so the
// user record never carries reset state.
type PasswordResetService struct {
	users       ports.UserRepository
	tokens      ports.ResetTokenStore
	mailer      ports.Mailer
	frontendURL string
	log         zerolog.Logger
}

func NewPasswordResetService(
	users ports.UserRepository,
	tokens ports.ResetTokenStore,
	mailer ports.Mailer,
	frontendURL string,
	log zerolog.Logger,
) *PasswordResetService {
	return &PasswordResetService{
		users:       users,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: frontendURL,
		log:         log,
	}
}

func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.tokens.Put(ctx, token, user.ID, resetTokenTTL); err != nil {
		return err
	}

	resetLink := s.frontendURL + "/reset-password?token=" + token
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset requested")
	return nil
}

func (s *PasswordResetService) Reset(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	userID, err := s.tokens.Get(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, user); err != nil {
		return err
	}

	// single use: drop the token once consumed
	if err := s.tokens.Delete(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete consumed reset token")
	}
	return nil
}
