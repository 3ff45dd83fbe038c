package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storecms/internal/errors"
	"storecms/internal/service"
)

// PublishHandler handles the social media publish endpoint.
type PublishHandler struct {
	publishService service.PublishService
}

// NewPublishHandler creates a new publish handler.
func NewPublishHandler(publishService service.PublishService) *PublishHandler {
	return &PublishHandler{publishService: publishService}
}

// PublishRequest represents a publish-to-social-media request.
type PublishRequest struct {
	BlogID              int    `json:"blogId" validate:"required"`
	SocialMediaPlatform string `json:"socialMediaPlatform" validate:"required"`
}

// PublishResponse represents a publish confirmation.
type PublishResponse struct {
	Message string `json:"message"`
}

// Publish godoc
// @Summary Publish a blog post to social media (simulated)
// @Tags publish
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PublishRequest true "Post and target platform"
// @Success 200 {object} PublishResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /publish-social-media [post]
func (h *PublishHandler) Publish(c echo.Context) error {
	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	confirmation, err := h.publishService.Publish(c.Request().Context(), req.BlogID, req.SocialMediaPlatform)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PublishResponse{Message: confirmation})
}
