package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product lookup misses.
	ErrProductNotFound = errors.New("product not found")
	// ErrBlogNotFound is returned when a blog post lookup misses.
	ErrBlogNotFound = errors.New("blog post not found")
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnsupportedPlatform is returned for publish targets other than the supported one.
	ErrUnsupportedPlatform = errors.New("unsupported social media platform")
	// ErrNoFileProvided is returned when an upload request carries no file payload.
	ErrNoFileProvided = errors.New("no file uploaded")
	// ErrStorageFailure is returned when the durable data file cannot be read or written.
	ErrStorageFailure = errors.New("storage failure")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrBlogNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BLOG_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnsupportedPlatform):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_PLATFORM")
	case errors.Is(err, ErrNoFileProvided):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILE_PROVIDED")
	case errors.Is(err, ErrStorageFailure):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "STORAGE_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
