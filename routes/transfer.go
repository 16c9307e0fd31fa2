package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/controllers"
	"github.com/pharmalink/pharmalink/middleware"
)

// SetupTransferRoutes configures the transfer ledger routes
func SetupTransferRoutes(app *fiber.App, db *gorm.DB) {
	transfer := controllers.NewTransferController(db)
	api := app.Group("/api/transfers", middleware.Protected(db))

	api.Get("/", transfer.ListTransfers)
	api.Post("/", transfer.CreateTransfer)
	api.Put("/:id/status", transfer.UpdateTransferStatus)
}
