package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/models"
)

// Seed inserts the demo accounts and pharmacies on an empty database.
// Safe to call on every boot.
func Seed(database *gorm.DB) {
	var count int64

	database.Model(&models.User{}).Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash seed password: ", err)
		}
		users := []models.User{
			{Name: "Demo Doctor", Email: "doctor@demo.com", Password: string(hash), Role: models.RoleDoctor},
			{Name: "Demo Pharmacist", Email: "pharm@demo.com", Password: string(hash), Role: models.RolePharmacist},
		}
		if err := database.Create(&users).Error; err != nil {
			log.Printf("Error seeding users: %v", err)
		}
	}

	database.Model(&models.Pharmacy{}).Count(&count)
	if count == 0 {
		pharmacies := []models.Pharmacy{
			{Name: "Central Pharmacy", Address: "123 Main St"},
			{Name: "Eastside Pharmacy", Address: "45 East Ave"},
		}
		if err := database.Create(&pharmacies).Error; err != nil {
			log.Printf("Error seeding pharmacies: %v", err)
		}
	}
}
