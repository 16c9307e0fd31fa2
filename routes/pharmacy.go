package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/controllers"
	"github.com/pharmalink/pharmalink/middleware"
)

// SetupPharmacyRoutes configures the pharmacy directory routes
func SetupPharmacyRoutes(app *fiber.App, db *gorm.DB) {
	pharmacy := controllers.NewPharmacyController(db)
	api := app.Group("/api/pharmacies", middleware.Protected(db))

	api.Get("/", pharmacy.ListPharmacies)
	api.Post("/", pharmacy.CreatePharmacy)
}
