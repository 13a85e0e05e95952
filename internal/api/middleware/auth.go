// Package middleware holds the request authenticator and the route guards.
// Authentication and authorization are deliberately separate passes: Auth
// only establishes WHO is calling (or that nobody is), Guard decides WHETHER
// that caller may proceed.
package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/api/metrics"
	"github.com/NoBdr07/plateforme-owod/internal/auth"
)

// Auth reads the session cookie, validates the token, and attaches the
// resulting principal to the request context. It never rejects a request:
// a missing, malformed, expired, or forged token simply leaves the request
// unauthenticated, and the route guards decide what that means. Failures
// are logged and counted but never surfaced to the client.
func Auth(codec *auth.Codec, cookieName string, log zerolog.Logger) echo.MiddlewareFunc {
	if cookieName == "" {
		cookieName = auth.DefaultCookieName
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil {
				// No session cookie: anonymous request.
				return next(c)
			}

			claims, err := codec.Validate(cookie.Value)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationLabel(err)).Inc()
				log.Debug().
					Err(err).
					Str("path", c.Path()).
					Msg("session token rejected")
				return next(c)
			}
			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()

			principal := auth.Principal{SubjectID: claims.Subject, Roles: claims.Roles}
			ctx := auth.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func validationLabel(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
