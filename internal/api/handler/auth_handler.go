package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/api/metrics"
	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// AuthHandler owns the session lifecycle: register, login (sets the session
// cookie), logout (clears it), and the current-session endpoint.
type AuthHandler struct {
	authService ports.AuthService
	codec       *auth.Codec
	cookies     auth.CookiePolicy
}

func NewAuthHandler(authService ports.AuthService, codec *auth.Codec, cookies auth.CookiePolicy) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, cookies: cookies}
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Firstname, req.Lastname)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  ports.SessionInfo
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		// Unknown address and wrong password are the same answer.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	c.SetCookie(h.cookies.Session(token, h.codec.TTL()))

	info, err := h.authService.Session(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// Logout clears the session cookie. It succeeds whether or not a session
// existed.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookies.Expired())
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns session information for the current principal.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  ports.SessionInfo
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	info, err := h.authService.Session(c.Request().Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
