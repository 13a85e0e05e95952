package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// PasswordHandler serves the password-reset flow: the request that emails a
// reset link, and the reset that consumes the token.
type PasswordHandler struct {
	resetService ports.PasswordResetService
}

func NewPasswordHandler(resetService ports.PasswordResetService) *PasswordHandler {
	return &PasswordHandler{resetService: resetService}
}

type resetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// Request emails a reset link to the account. The answer is the same whether
// or not the address exists, so the endpoint cannot be used to enumerate
// accounts.
//
// @Summary      Request a password reset
// @Tags         password
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestRequest  true  "Account email"
// @Success      200   {object}  map[string]string
// @Router       /password/request-reset [post]
func (h *PasswordHandler) Request(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resetService.Request(c.Request().Context(), req.Email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset email sent"})
}

// Reset consumes a reset token and replaces the account password.
//
// @Summary      Reset the password
// @Tags         password
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequest  true  "Token and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /password/reset [post]
func (h *PasswordHandler) Reset(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resetService.Reset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "password updated"})
}
