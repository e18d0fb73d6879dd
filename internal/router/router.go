package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/nkshtr/CropIn/internal/auth"
	"github.com/nkshtr/CropIn/internal/config"
	"github.com/nkshtr/CropIn/internal/handler"
	"github.com/nkshtr/CropIn/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	uploadHandler *handler.UploadHandler,
	advisoryHandler *handler.AdvisoryHandler,
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

	// Uploaded profile pictures are addressed by the stable relative
	// path stored on the user record.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/advisory/crops", advisoryHandler.Crops)
	api.GET("/advisory/soil", advisoryHandler.SoilGuides)
	api.GET("/advisory/pests", advisoryHandler.PestAlerts)
	api.GET("/advisory/schemes", advisoryHandler.Schemes)
	api.GET("/market/prices", advisoryHandler.MarketPrices)
	api.GET("/weather", advisoryHandler.Weather)

	// Authenticated routes (valid bearer token)
	authed := api.Group("", auth.Authenticate(cfg.JWTSecret))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/upload", uploadHandler.Upload)

	// Admin-only account management
	admin := authed.Group("", auth.RequireRole(model.RoleAdmin))
	admin.GET("/auth/users", userHandler.ListUsers)
	admin.PUT("/auth/users/:id", userHandler.UpdateUser)
	admin.DELETE("/auth/users/:id", userHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
