package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nkshtr/CropIn/internal/auth"
	"github.com/nkshtr/CropIn/internal/errors"
	"github.com/nkshtr/CropIn/internal/service"
)

// UploadHandler handles profile picture uploads.
type UploadHandler struct {
	svc service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(svc service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload godoc
// @Summary Upload a profile picture
// @Description Accepts a single jpg/jpeg/png image in the multipart field "image" and binds it to the caller's profile.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Profile image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 415 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image file")
	}
	defer src.Close()

	path, err := h.svc.Bind(
		c.Request().Context(),
		userID,
		src,
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"path": path,
	})
}
