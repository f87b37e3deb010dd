package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func RegisterUploads(e *echo.Echo, uploads *service.UploadService, auth *service.AuthService) {
	handler := &UploadHandler{uploads: uploads}

	admin := e.Group("/api/v1/admin/uploads", RequireAuth(auth))
	admin.POST("", handler.uploadImages)
}

// uploadImages accepts a multipart form with one or more "images" parts and
// returns the public URLs of the stored objects.
func (h *UploadHandler) uploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("multipart form is required"))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, util.Error("at least one image is required"))
	}

	uploads := make([]service.ImageUpload, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("could not read uploaded file"))
		}
		defer file.Close()

		uploads = append(uploads, service.ImageUpload{
			Reader:      file,
			Size:        header.Size,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	urls, err := h.uploads.UploadImages(c.Request().Context(), uploads)
	if err != nil {
		if errors.Is(err, service.ErrUploadValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Data("urls", urls))
}
