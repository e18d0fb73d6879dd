package main

import (
	"log"
	"net/http"

	_ "github.com/nkshtr/CropIn/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nkshtr/CropIn/internal/auth"
	"github.com/nkshtr/CropIn/internal/cache"
	"github.com/nkshtr/CropIn/internal/config"
	"github.com/nkshtr/CropIn/internal/db"
	"github.com/nkshtr/CropIn/internal/handler"
	"github.com/nkshtr/CropIn/internal/model"
	"github.com/nkshtr/CropIn/internal/repository"
	"github.com/nkshtr/CropIn/internal/router"
	"github.com/nkshtr/CropIn/internal/service"
)

// @title Agri Advisory API
// @version 1.0
// @description Agricultural advisory backend with JWT authentication, role-gated account management, and profile uploads.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories and auth components
	userRepo := repository.NewUserRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	uploadService := service.NewUploadService(userRepo, cacheClient, cfg.UploadDir)
	advisoryService := service.NewAdvisoryService(cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	advisoryHandler := handler.NewAdvisoryHandler(advisoryService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		uploadHandler,
		advisoryHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
