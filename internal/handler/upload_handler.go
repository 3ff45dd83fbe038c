package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storecms/internal/errors"
	"storecms/internal/service"
)

// maxUploadSize caps image uploads at 10 MB.
const maxUploadSize = 10 << 20

// UploadHandler handles image upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadResponse represents a stored image.
type UploadResponse struct {
	ImgURL  string `json:"imgUrl"`
	Message string `json:"message"`
}

// Upload godoc
// @Summary Upload an image
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload-image [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxUploadSize)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrNoFileProvided)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to read uploaded file",
			Code:  "UPLOAD_READ_FAILED",
		})
	}
	defer src.Close()

	imgURL, err := h.uploadService.Store(c.Request().Context(), src, fileHeader.Filename)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadResponse{
		ImgURL:  imgURL,
		Message: "Image uploaded successfully.",
	})
}
