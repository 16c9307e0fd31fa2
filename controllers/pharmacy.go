package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/models"
)

// PharmacyController serves the pharmacy directory.
type PharmacyController struct {
	DB *gorm.DB
}

func NewPharmacyController(db *gorm.DB) *PharmacyController {
	return &PharmacyController{DB: db}
}

// ListPharmacies returns every pharmacy ordered by name ascending.
func (p *PharmacyController) ListPharmacies(c *fiber.Ctx) error {
	var pharmacies []models.Pharmacy
	if err := p.DB.Order("name").Find(&pharmacies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	out := make([]models.PharmacyResponse, 0, len(pharmacies))
	for i := range pharmacies {
		out = append(out, pharmacies[i].Response())
	}

	return c.JSON(fiber.Map{
		"pharmacies": out,
	})
}

// CreatePharmacy adds a directory entry. Only the name is mandatory.
func (p *PharmacyController) CreatePharmacy(c *fiber.Ctx) error {
	input := new(models.Pharmacy)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	pharmacy := models.Pharmacy{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := p.DB.Create(&pharmacy).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create pharmacy",
		})
	}

	return c.JSON(fiber.Map{
		"pharmacy": pharmacy.Response(),
	})
}
