package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// WeeklyHandler serves the featured designer of the week.
type WeeklyHandler struct {
	weeklyService ports.WeeklyService
}

func NewWeeklyHandler(weeklyService ports.WeeklyService) *WeeklyHandler {
	return &WeeklyHandler{weeklyService: weeklyService}
}

// Current returns this week's featured designer.
//
// @Summary      Designer of the week
// @Tags         weekly
// @Produce      json
// @Success      200  {object}  domain.Designer
// @Failure      404  {object}  map[string]string
// @Router       /weekly [get]
func (h *WeeklyHandler) Current(c echo.Context) error {
	designer, err := h.weeklyService.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}
