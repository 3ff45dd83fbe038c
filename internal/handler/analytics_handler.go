package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storecms/internal/errors"
	"storecms/internal/service"
)

// AnalyticsHandler handles the admin dashboard overview endpoint.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview godoc
// @Summary Admin dashboard analytics
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.Overview
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	overview, err := h.analyticsService.Overview(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, overview)
}
