package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storecms/internal/config"
	"storecms/internal/errors"
	"storecms/internal/handler"
)

// APIKeyHeader carries the admin token on privileged routes.
const APIKeyHeader = "x-api-key"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	analyticsHandler *handler.AnalyticsHandler,
	uploadHandler *handler.UploadHandler,
	productHandler *handler.ProductHandler,
	blogHandler *handler.BlogHandler,
	publishHandler *handler.PublishHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images and, when configured, the public front-end are plain
	// static files.
	e.Static("/uploads", cfg.UploadsDir)
	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/login", authHandler.Login)
	api.GET("/products", productHandler.List)
	api.GET("/blogs", blogHandler.List)
	api.GET("/blogs/:id", blogHandler.Get)

	// Secured routes (require a valid admin token in the x-api-key header).
	// A missing key is 401, a bad or expired token is 403.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + APIKeyHeader,
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(APIKeyHeader) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "Authentication failed. API key is missing.",
					Code:  "API_KEY_MISSING",
				})
			}
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "Authentication failed. Invalid token.",
				Code:  "INVALID_TOKEN",
			})
		},
	}))

	secured.GET("/analytics", analyticsHandler.Overview)
	secured.POST("/upload-image", uploadHandler.Upload)

	secured.POST("/products", productHandler.Create)
	secured.PUT("/products/:id", productHandler.Update)
	secured.DELETE("/products/:id", productHandler.Delete)

	secured.POST("/blogs", blogHandler.Create)
	secured.PUT("/blogs/:id", blogHandler.Update)
	secured.DELETE("/blogs/:id", blogHandler.Delete)

	secured.POST("/publish-social-media", publishHandler.Publish)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
