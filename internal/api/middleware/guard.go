package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/api/metrics"
	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// Guard enforces a fixed authorization rule on a route. A denied anonymous
// request gets 401 (it could succeed after login); a denied authenticated
// request gets 403.
func Guard(evaluator *auth.Evaluator, rule auth.Rule, log zerolog.Logger) echo.MiddlewareFunc {
	return guard(evaluator, func(echo.Context) auth.Rule { return rule }, log)
}

// GuardOwner enforces an owner-or-role rule where the resource ID comes from
// a path parameter, resolved per request.
func GuardOwner(evaluator *auth.Evaluator, kind auth.ResourceKind, param string, role domain.Role, log zerolog.Logger) echo.MiddlewareFunc {
	return guard(evaluator, func(c echo.Context) auth.Rule {
		return auth.OwnerOrRole(auth.Resource{Kind: kind, ID: c.Param(param)}, role)
	}, log)
}

func guard(evaluator *auth.Evaluator, ruleFor func(echo.Context) auth.Rule, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := ruleFor(c)

			var principal *auth.Principal
			if p, ok := auth.PrincipalFromContext(c.Request().Context()); ok {
				principal = &p
			}

			decision, err := evaluator.Decide(c.Request().Context(), principal, rule)
			metrics.AuthzDecisionsTotal.WithLabelValues(rule.Name(), decision.String()).Inc()

			if decision == auth.Admit {
				return next(c)
			}

			if err != nil && errors.Is(err, auth.ErrStoreUnavailable) {
				log.Error().
					Err(err).
					Str("path", c.Path()).
					Msg("ownership lookup failed, denying")
			}

			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
