package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storecms/internal/errors"
	"storecms/internal/model"
	"storecms/internal/service"
)

// BlogHandler handles blog post endpoints.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// CreateBlogRequest represents a new blog post. The server assigns the ID and
// the creation timestamp.
type CreateBlogRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author"`
	Img      string `json:"img"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

// UpdateBlogRequest represents a partial blog update. Absent fields leave the
// stored values untouched; the creation timestamp cannot be changed.
type UpdateBlogRequest struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Img      *string `json:"img"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Featured *bool   `json:"featured"`
}

func (r UpdateBlogRequest) toPatch() model.BlogPatch {
	return model.BlogPatch{
		Title:    r.Title,
		Author:   r.Author,
		Img:      r.Img,
		Content:  r.Content,
		Category: r.Category,
		Featured: r.Featured,
	}
}

// List godoc
// @Summary List all blog posts
// @Tags blogs
// @Produce json
// @Success 200 {array} model.Blog
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.blogService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get godoc
// @Summary Get a blog post
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} model.Blog
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrBlogNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	blog, err := h.blogService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, blog)
}

// Create godoc
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateBlogRequest true "Blog fields"
// @Success 201 {object} model.Blog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog := &model.Blog{
		Title:    req.Title,
		Author:   req.Author,
		Img:      req.Img,
		Content:  req.Content,
		Category: req.Category,
		Featured: req.Featured,
	}

	created, err := h.blogService.Create(c.Request().Context(), blog)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Param request body UpdateBlogRequest true "Fields to change"
// @Success 200 {object} model.Blog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrBlogNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.blogService.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a blog post
// @Tags blogs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 204 "deleted"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.blogService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
