package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/auth"
)

// ctxPrincipal extracts the principal injected by the request authenticator.
// Handlers behind an Authenticated guard can rely on it, but the check stays:
// a handler reached without a principal is a routing mistake, and answering
// 401 here keeps that mistake from leaking data.
func ctxPrincipal(c echo.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
