package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "storecms/docs" // swagger docs

	"storecms/internal/auth"
	"storecms/internal/config"
	"storecms/internal/db"
	"storecms/internal/handler"
	"storecms/internal/repository"
	"storecms/internal/router"
	"storecms/internal/service"
)

// @title Store CMS API
// @version 1.0
// @description Content-management backend for the store front-end: catalog products, blog posts, image uploads and a simulated social-media publish action.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	fileDB := db.NewFileDB(cfg.DataFile, cfg.FailOpenReads)

	// Initialize repositories
	productRepo := repository.NewProductRepository(fileDB)
	blogRepo := repository.NewBlogRepository(fileDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(cfg, jwtService)
	productService := service.NewProductService(productRepo)
	blogService := service.NewBlogService(blogRepo)
	analyticsService := service.NewAnalyticsService(productRepo, blogRepo)
	uploadService := service.NewUploadService(cfg.UploadsDir)
	publishService := service.NewPublishService(blogRepo, service.NewLogPublisher(), cfg.PublicBaseURL)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	productHandler := handler.NewProductHandler(productService)
	blogHandler := handler.NewBlogHandler(blogService)
	publishHandler := handler.NewPublishHandler(publishService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		analyticsHandler,
		uploadHandler,
		productHandler,
		blogHandler,
		publishHandler,
	)

	log.Printf("Data file: %s (fail-open reads: %v)", cfg.DataFile, cfg.FailOpenReads)
	log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.PublicBaseURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
