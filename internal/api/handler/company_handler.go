package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/api/metrics"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// CompanyHandler serves the company directory. Public routes only ever see
// the summary projection; the full record, with its confidential fields,
// stays behind ownership guards.
type CompanyHandler struct {
	companyService ports.CompanyService
}

func NewCompanyHandler(companyService ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// All lists the public view of every company.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}  domain.CompanySummary
// @Router       /company/all [get]
func (h *CompanyHandler) All(c echo.Context) error {
	companies, err := h.companyService.AllSummaries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get returns the public view of one company.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  domain.CompanySummary
// @Failure      404  {object}  map[string]string
// @Router       /company/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.companyService.SummaryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// GetFull returns the complete record, confidential fields included.
//
// @Summary      Get a company's full record
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  domain.Company
// @Failure      403  {object}  map[string]string
// @Router       /company/{id}/full [get]
func (h *CompanyHandler) GetFull(c echo.Context) error {
	company, err := h.companyService.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// ByUser returns the full record of the company linked to a user account.
//
// @Summary      Get a user's company
// @Tags         companies
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  domain.Company
// @Failure      404     {object}  map[string]string
// @Router       /company/user/{userId} [get]
func (h *CompanyHandler) ByUser(c echo.Context) error {
	company, err := h.companyService.ByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Create registers the caller's company and links it to their account.
//
// @Summary      Create own company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Company  true  "Company fields"
// @Success      201   {object}  domain.Company
// @Router       /company/new [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var company domain.Company
	if err := c.Bind(&company); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.companyService.CreateForUser(c.Request().Context(), principal.SubjectID, &company)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update patches fields on a company record.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Company ID"
// @Param        body  body      domain.Company  true  "Fields to change"
// @Success      200   {object}  domain.Company
// @Router       /company/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var patch domain.Company
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	company, err := h.companyService.UpdateFields(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// UpdateLogo replaces the company logo.
//
// @Summary      Upload company logo
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Company ID"
// @Param        logo  formData  file    true  "Image file"
// @Success      200   {object}  domain.Company
// @Router       /company/{id}/logo [post]
func (h *CompanyHandler) UpdateLogo(c echo.Context) error {
	upload, f, err := formUpload(c, "logo")
	if err != nil {
		return err
	}
	defer f.Close()

	company, err := h.companyService.UpdateLogo(c.Request().Context(), c.Param("id"), upload)
	if err != nil {
		return err
	}
	metrics.ImageUploadsTotal.WithLabelValues("logo").Inc()
	return c.JSON(http.StatusOK, company)
}

// UpdateTeamPhoto replaces the team photo.
//
// @Summary      Upload team photo
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Company ID"
// @Param        photo  formData  file    true  "Image file"
// @Success      200    {object}  domain.Company
// @Router       /company/{id}/team-photo [post]
func (h *CompanyHandler) UpdateTeamPhoto(c echo.Context) error {
	upload, f, err := formUpload(c, "photo")
	if err != nil {
		return err
	}
	defer f.Close()

	company, err := h.companyService.UpdateTeamPhoto(c.Request().Context(), c.Param("id"), upload)
	if err != nil {
		return err
	}
	metrics.ImageUploadsTotal.WithLabelValues("team").Inc()
	return c.JSON(http.StatusOK, company)
}

// AddWorks appends work images to the company page.
//
// @Summary      Upload company works
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Company ID"
// @Param        works  formData  file    true  "Image files (max 3)"
// @Success      200    {object}  domain.Company
// @Router       /company/{id}/works [post]
func (h *CompanyHandler) AddWorks(c echo.Context) error {
	uploads, files, err := formUploads(c, "works")
	if err != nil {
		return err
	}
	defer closeAll(files)

	company, err := h.companyService.AddWorks(c.Request().Context(), c.Param("id"), uploads)
	if err != nil {
		return err
	}
	metrics.ImageUploadsTotal.WithLabelValues("work").Add(float64(len(uploads)))
	return c.JSON(http.StatusOK, company)
}

// DeleteWork removes one work image by its URL.
//
// @Summary      Delete a company work
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Param        url  query     string  true  "Work image URL"
// @Success      200  {object}  domain.Company
// @Router       /company/{id}/works [delete]
func (h *CompanyHandler) DeleteWork(c echo.Context) error {
	workURL := c.QueryParam("url")
	if workURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing url parameter")
	}

	company, err := h.companyService.DeleteWork(c.Request().Context(), c.Param("id"), workURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Delete removes a company record and unlinks it from its owner.
//
// @Summary      Delete a company
// @Tags         companies
// @Param        id  path  string  true  "Company ID"
// @Success      204  "deleted"
// @Router       /company/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.companyService.Delete(c.Request().Context(), principal.SubjectID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
