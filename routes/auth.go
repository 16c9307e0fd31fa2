package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/controllers"
	"github.com/pharmalink/pharmalink/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := controllers.NewAuthController(db)
	api := app.Group("/api")

	// Public routes
	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)

	// Protected routes
	api.Get("/me", middleware.Protected(db), auth.Me)
}
