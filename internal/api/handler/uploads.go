package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// formUpload reads a single multipart file from the named field.
// The returned closer must be closed by the caller once the service is done.
func formUpload(c echo.Context, field string) (ports.Upload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return ports.Upload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "missing file field "+field)
	}

	f, err := fh.Open()
	if err != nil {
		return ports.Upload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable file "+fh.Filename)
	}
	return ports.Upload{Filename: fh.Filename, Content: f}, f, nil
}

// formUploads reads every multipart file from the named field.
func formUploads(c echo.Context, field string) ([]ports.Upload, []multipart.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "missing file field "+field)
	}

	uploads := make([]ports.Upload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll(files)
			return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable file "+fh.Filename)
		}
		uploads = append(uploads, ports.Upload{Filename: fh.Filename, Content: f})
		files = append(files, f)
	}
	return uploads, files, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
