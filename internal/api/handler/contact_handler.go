package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// ContactHandler relays contact-form submissions to the platform inbox.
type ContactHandler struct {
	mailer ports.Mailer
}

func NewContactHandler(mailer ports.Mailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

type contactRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Reason      string `json:"reason"`
	Description string `json:"description" validate:"required"`
}

// Send relays a contact-form message.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := ports.ContactMessage{
		Email:       req.Email,
		Subject:     req.Subject,
		Reason:      req.Reason,
		Description: req.Description,
	}
	if err := h.mailer.SendContact(c.Request().Context(), msg); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "message sent"})
}
