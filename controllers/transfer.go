package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/middleware"
	"github.com/pharmalink/pharmalink/models"
)

// TransferController manages the transfer ledger.
type TransferController struct {
	DB *gorm.DB
}

func NewTransferController(db *gorm.DB) *TransferController {
	return &TransferController{DB: db}
}

type transferInput struct {
	PatientName    string `json:"patient_name"`
	Medication     string `json:"medication"`
	FromPharmacyID uint   `json:"from_pharmacy_id"`
	ToPharmacyID   uint   `json:"to_pharmacy_id"`
}

// CreateTransfer records a new pending transfer for the authenticated
// user. Pharmacy references are stored as given and not existence-checked.
func (t *TransferController) CreateTransfer(c *fiber.Ctx) error {
	input := new(transferInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.PatientName == "" || input.Medication == "" || input.FromPharmacyID == 0 || input.ToPharmacyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing fields",
		})
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	transfer := models.Transfer{
		PatientName:    input.PatientName,
		Medication:     input.Medication,
		FromPharmacyID: input.FromPharmacyID,
		ToPharmacyID:   input.ToPharmacyID,
		Status:         models.StatusPending,
		CreatedByID:    user.ID,
	}
	if err := t.DB.Create(&transfer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transfer",
		})
	}

	// Reload with relations so the response carries the nested shape.
	t.DB.Preload("FromPharmacy").Preload("ToPharmacy").Preload("CreatedBy").First(&transfer, transfer.ID)

	return c.JSON(fiber.Map{
		"transfer": transfer.Response(),
	})
}

// ListTransfers returns the ledger, most recent first.
func (t *TransferController) ListTransfers(c *fiber.Ctx) error {
	var transfers []models.Transfer
	err := t.DB.Preload("FromPharmacy").Preload("ToPharmacy").Preload("CreatedBy").
		Order("created_at desc").
		Find(&transfers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	out := make([]models.TransferResponse, 0, len(transfers))
	for i := range transfers {
		out = append(out, transfers[i].Response())
	}

	return c.JSON(fiber.Map{
		"transfers": out,
	})
}

// UpdateTransferStatus moves a transfer to any of the three states. Any
// authenticated user may do this; restricting by role would go here.
func (t *TransferController) UpdateTransferStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status models.TransferStatus `json:"status"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if !input.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status",
		})
	}

	id := c.Params("id")
	var transfer models.Transfer
	if t.DB.First(&transfer, "id = ?", id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	}

	transfer.Status = input.Status
	if err := t.DB.Save(&transfer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update transfer",
		})
	}

	t.DB.Preload("FromPharmacy").Preload("ToPharmacy").Preload("CreatedBy").First(&transfer, transfer.ID)

	return c.JSON(fiber.Map{
		"transfer": transfer.Response(),
	})
}
