package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// ResetTokenStore keeps password-reset tokens in Redis.
// Key format: reset:<token> → user ID; expiry enforces the token lifetime,
// so an expired token simply stops existing.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func (s *ResetTokenStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

// Get resolves a token to its user ID. Unknown and expired tokens are the
// same case: domain.ErrResetTokenInvalid.
func (s *ResetTokenStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrResetTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("lookup reset token: %w", err)
	}
	return userID, nil
}

func (s *ResetTokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete reset token: %w", err)
	}
	return nil
}

func (s *ResetTokenStore) key(token string) string {
	return "reset:" + token
}
