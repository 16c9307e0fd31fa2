package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/models"
)

func Migrate(database *gorm.DB) {
	err := database.AutoMigrate(
		&models.User{},
		&models.Pharmacy{},
		&models.Transfer{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
