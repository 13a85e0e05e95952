// Package auth implements the stateless session machinery: a signed token
// codec, the request principal, the session cookie policy, and the
// authorization evaluator. Everything here is safe for concurrent use; the
// signing secret is immutable after construction.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// Validation outcomes. Callers must treat all three as "not authenticated";
// they exist so the failure can be logged and counted, never so it can be
// reported to the client.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)

// Claims are the decoded fields of a valid session token.
type Claims struct {
	Subject   string
	Roles     []domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// tokenClaims is the wire shape: {sub, roles, iat, exp}, HS256-signed.
type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Codec issues and validates session tokens. The secret is shared,
// symmetric, and known only to this service.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// CodecOption customises a Codec.
type CodecOption func(*Codec)

// WithClock replaces the codec's time source. Tests use this to drive
// issuance and expiry deterministically.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) { c.now = now }
}

// NewCodec builds a Codec with the given signing secret and token lifetime.
func NewCodec(secret []byte, ttl time.Duration, opts ...CodecOption) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	c := &Codec{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured token lifetime. The cookie max-age mirrors it.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue creates a signed token for the subject with the given role set,
// valid from now until now+ttl. Pure apart from reading the clock.
func (c *Codec) Issue(subject string, roles []domain.Role) (string, error) {
	now := c.now().UTC()
	labels := make([]string, len(roles))
	for i, r := range roles {
		labels[i] = string(r)
	}

	claims := tokenClaims{
		Roles: labels,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Validate decodes and verifies a token. The signature is checked before any
// claim is trusted, expiry included, so a tampered exp cannot resurrect a
// token. Returns exactly one of ErrTokenMalformed, ErrTokenBadSignature,
// ErrTokenExpired, or the decoded Claims. Never panics on hostile input; an
// empty token is Malformed.
func (c *Codec) Validate(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrTokenMalformed
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		default:
			return Claims{}, ErrTokenMalformed
		}
	}

	roles := make([]domain.Role, 0, len(parsed.Roles))
	for _, label := range parsed.Roles {
		if r := domain.Role(label); r.Valid() {
			roles = append(roles, r)
		}
	}

	claims := Claims{Subject: parsed.Subject, Roles: roles}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

func (c *Codec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return c.secret, nil
}
