package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/api/metrics"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// DesignerHandler serves the designer directory: public reads, owner
// mutations, agenda events, and the admin back office.
type DesignerHandler struct {
	designerService ports.DesignerService
}

func NewDesignerHandler(designerService ports.DesignerService) *DesignerHandler {
	return &DesignerHandler{designerService: designerService}
}

// All lists every designer profile.
//
// @Summary      List designers
// @Tags         designers
// @Produce      json
// @Success      200  {array}  domain.Designer
// @Router       /designers/all [get]
func (h *DesignerHandler) All(c echo.Context) error {
	designers, err := h.designerService.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designers)
}

// Get returns one designer by ID.
//
// @Summary      Get a designer
// @Tags         designers
// @Produce      json
// @Param        id   path      string  true  "Designer ID"
// @Success      200  {object}  domain.Designer
// @Failure      404  {object}  map[string]string
// @Router       /designers/{id} [get]
func (h *DesignerHandler) Get(c echo.Context) error {
	designer, err := h.designerService.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// ByUser returns the designer profile linked to a user account.
//
// @Summary      Get a user's designer profile
// @Tags         designers
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  domain.Designer
// @Failure      404     {object}  map[string]string
// @Router       /designers/designer/{userId} [get]
func (h *DesignerHandler) ByUser(c echo.Context) error {
	designer, err := h.designerService.ByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// BySpecialty filters designers on a specialty label.
//
// @Summary      Search designers by specialty
// @Tags         designers
// @Produce      json
// @Param        specialty  query   string  true  "Specialty label"
// @Success      200        {array} domain.Designer
// @Router       /designers/specialty [get]
func (h *DesignerHandler) BySpecialty(c echo.Context) error {
	specialty := c.QueryParam("specialty")
	if specialty == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing specialty parameter")
	}

	designers, err := h.designerService.BySpecialty(c.Request().Context(), specialty)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designers)
}

// Create registers the caller's own designer profile and links it to their
// account.
//
// @Summary      Create own designer profile
// @Tags         designers
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Designer  true  "Profile fields"
// @Success      201   {object}  domain.Designer
// @Failure      409   {object}  map[string]string
// @Router       /designers/new [post]
func (h *DesignerHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var designer domain.Designer
	if err := c.Bind(&designer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.designerService.CreateForUser(c.Request().Context(), principal.SubjectID, &designer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update patches profile fields on a designer.
//
// @Summary      Update a designer
// @Tags         designers
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Designer ID"
// @Param        body  body      domain.Designer  true  "Fields to change"
// @Success      200   {object}  domain.Designer
// @Router       /designers/{id} [put]
func (h *DesignerHandler) Update(c echo.Context) error {
	var patch domain.Designer
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	designer, err := h.designerService.UpdateFields(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// UpdatePicture replaces the profile picture.
//
// @Summary      Upload profile picture
// @Tags         designers
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       path      string  true  "Designer ID"
// @Param        picture  formData  file    true  "Image file"
// @Success      200      {object}  domain.Designer
// @Router       /designers/{id}/picture [post]
func (h *DesignerHandler) UpdatePicture(c echo.Context) error {
	upload, f, err := formUpload(c, "picture")
	if err != nil {
		return err
	}
	defer f.Close()

	designer, err := h.designerService.UpdatePicture(c.Request().Context(), c.Param("id"), upload)
	if err != nil {
		return err
	}
	metrics.ImageUploadsTotal.WithLabelValues("profile").Inc()
	return c.JSON(http.StatusOK, designer)
}

// AddWorks appends major-works images to the profile.
//
// @Summary      Upload major works
// @Tags         designers
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Designer ID"
// @Param        works  formData  file    true  "Image files (max 3)"
// @Success      200    {object}  domain.Designer
// @Failure      400    {object}  map[string]string
// @Router       /designers/{id}/works [post]
func (h *DesignerHandler) AddWorks(c echo.Context) error {
	uploads, files, err := formUploads(c, "works")
	if err != nil {
		return err
	}
	defer closeAll(files)

	designer, err := h.designerService.AddWorks(c.Request().Context(), c.Param("id"), uploads)
	if err != nil {
		return err
	}
	metrics.ImageUploadsTotal.WithLabelValues("work").Add(float64(len(uploads)))
	return c.JSON(http.StatusOK, designer)
}

// DeleteWork removes one major-works image by its URL.
//
// @Summary      Delete a major work
// @Tags         designers
// @Produce      json
// @Param        id   path      string  true  "Designer ID"
// @Param        url  query     string  true  "Work image URL"
// @Success      200  {object}  domain.Designer
// @Router       /designers/{id}/works [delete]
func (h *DesignerHandler) DeleteWork(c echo.Context) error {
	workURL := c.QueryParam("url")
	if workURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing url parameter")
	}

	designer, err := h.designerService.DeleteWork(c.Request().Context(), c.Param("id"), workURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// Delete removes a designer profile. Administrators can delete any profile;
// an owner can only unlink and delete their own.
//
// @Summary      Delete a designer
// @Tags         designers
// @Produce      json
// @Param        id   path  string  true  "Designer ID"
// @Success      204  "deleted"
// @Router       /designers/{id} [delete]
func (h *DesignerHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if principal.HasRole(domain.RoleAdmin) {
		if err := h.designerService.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.designerService.DeleteForUser(c.Request().Context(), principal.SubjectID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Agenda events (always on the caller's own profile) ---

// AddEvent adds an agenda event to the caller's designer profile.
//
// @Summary      Add an agenda event
// @Tags         designers
// @Accept       json
// @Produce      json
// @Param        body  body      domain.DesignerEvent  true  "Event"
// @Success      200   {object}  domain.Designer
// @Router       /designers/events [post]
func (h *DesignerHandler) AddEvent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var event domain.DesignerEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	designer, err := h.designerService.AddEvent(c.Request().Context(), principal.SubjectID, event)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// ModifyEvent updates an agenda event on the caller's designer profile.
//
// @Summary      Modify an agenda event
// @Tags         designers
// @Accept       json
// @Produce      json
// @Param        body  body      domain.DesignerEvent  true  "Event with ID"
// @Success      200   {object}  domain.Designer
// @Failure      404   {object}  map[string]string
// @Router       /designers/events [put]
func (h *DesignerHandler) ModifyEvent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var event domain.DesignerEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	designer, err := h.designerService.ModifyEvent(c.Request().Context(), principal.SubjectID, event)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// DeleteEvent removes an agenda event from the caller's designer profile.
//
// @Summary      Delete an agenda event
// @Tags         designers
// @Produce      json
// @Param        eventId  path      string  true  "Event ID"
// @Success      200      {object}  domain.Designer
// @Router       /designers/events/{eventId} [delete]
func (h *DesignerHandler) DeleteEvent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	designer, err := h.designerService.DeleteEvent(c.Request().Context(), principal.SubjectID, c.Param("eventId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designer)
}

// --- Admin back office ---

type transferRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// AdminCreate registers a designer profile not yet linked to any account.
//
// @Summary      Create a designer (admin)
// @Tags         designers
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Designer  true  "Profile fields"
// @Success      201   {object}  domain.Designer
// @Router       /designers/admin/new [post]
func (h *DesignerHandler) AdminCreate(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var designer domain.Designer
	if err := c.Bind(&designer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.designerService.CreateAsAdmin(c.Request().Context(), principal.SubjectID, &designer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// AdminCreated lists the profiles this administrator created and still holds.
//
// @Summary      List admin-created designers
// @Tags         designers
// @Produce      json
// @Success      200  {array}  domain.Designer
// @Router       /designers/admin/created [get]
func (h *DesignerHandler) AdminCreated(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	designers, err := h.designerService.CreatedByAdmin(c.Request().Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, designers)
}

// AdminTransfer hands an admin-created profile over to a user account.
//
// @Summary      Transfer a designer to a user (admin)
// @Tags         designers
// @Accept       json
// @Produce      json
// @Param        designerId  path      string           true  "Designer ID"
// @Param        body        body      transferRequest  true  "Target user"
// @Success      200         {object}  map[string]string
// @Failure      409         {object}  map[string]string
// @Router       /designers/admin/transfer/{designerId} [post]
func (h *DesignerHandler) AdminTransfer(c echo.Context) error {
	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.designerService.Transfer(c.Request().Context(), req.UserID, c.Param("designerId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "transferred"})
}
