package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// UserHandler serves the account endpoints: current user, friends, account
// type. Every route here sits behind an Authenticated guard, so the subject
// is always the caller.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's account record.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.FindByID(c.Request().Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Friends lists the designer profiles the caller follows.
//
// @Summary      List friends
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.Designer
// @Router       /users/friends [get]
func (h *UserHandler) Friends(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	friends, err := h.userService.Friends(c.Request().Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friends)
}

// AddFriend adds a designer to the caller's friends.
//
// @Summary      Add a friend
// @Tags         users
// @Produce      json
// @Param        designerId  path      string  true  "Designer ID"
// @Success      200         {object}  domain.User
// @Router       /users/friends/{designerId} [post]
func (h *UserHandler) AddFriend(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.AddFriend(c.Request().Context(), principal.SubjectID, c.Param("designerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// RemoveFriend removes a designer from the caller's friends.
//
// @Summary      Remove a friend
// @Tags         users
// @Produce      json
// @Param        designerId  path      string  true  "Designer ID"
// @Success      200         {object}  domain.User
// @Router       /users/friends/{designerId} [delete]
func (h *UserHandler) RemoveFriend(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.RemoveFriend(c.Request().Context(), principal.SubjectID, c.Param("designerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// AccountType tells whether the caller's account is linked to a designer or
// a company record.
//
// @Summary      Account type
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /users/account-type [get]
func (h *UserHandler) AccountType(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	kind, err := h.userService.AccountType(c.Request().Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"account_type": string(kind)})
}
