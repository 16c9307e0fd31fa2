package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/pharmalink/pharmalink/cron"
	"github.com/pharmalink/pharmalink/db"
	"github.com/pharmalink/pharmalink/routes"
)

func main() {
	app := fiber.New()

	database := db.Init()
	db.Migrate(database)
	db.Seed(database)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, database)
	routes.SetupPharmacyRoutes(app, database)
	routes.SetupTransferRoutes(app, database)

	cron.StartReminderJobs(database)

	// Client application shell; anything the API doesn't claim falls
	// through to the static bundle.
	app.Static("/", "./static")
	app.Get("*", func(c *fiber.Ctx) error {
		return c.SendFile("./static/index.html")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5100"
	}
	log.Fatal(app.Listen(":" + port))
}
