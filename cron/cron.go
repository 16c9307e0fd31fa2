package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/models"
	"github.com/pharmalink/pharmalink/utils"
)

// StartReminderJobs starts the scheduler that nudges creators of transfers
// left sitting in pending.
func StartReminderJobs(db *gorm.DB) {
	c := cron.New()
	// Hourly sweep for transfers pending longer than a day
	_, err := c.AddFunc("0 * * * *", func() {
		sendPendingReminders(db)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for pending transfer reminders")
}

// sendPendingReminders finds stale pending transfers and mails their creators
func sendPendingReminders(db *gorm.DB) {
	var transfers []models.Transfer
	cutoff := time.Now().Add(-24 * time.Hour)

	err := db.Preload("CreatedBy").Preload("FromPharmacy").Preload("ToPharmacy").
		Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&transfers).Error
	if err != nil {
		log.Printf("Error fetching pending transfers for reminders: %v", err)
		return
	}

	for _, transfer := range transfers {
		if transfer.CreatedBy.Email == "" {
			continue
		}
		if err := sendReminderEmail(&transfer); err != nil {
			log.Printf("Failed to send reminder for transfer %d: %v", transfer.ID, err)
			continue
		}
		log.Printf("Sent reminder for transfer %d to %s", transfer.ID, transfer.CreatedBy.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(transfer *models.Transfer) error {
	subject := fmt.Sprintf("Reminder: Pending Transfer - %s", transfer.Medication)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The medication transfer below has been pending for more than a day.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Patient:</strong> %s</li>
			<li><strong>Medication:</strong> %s</li>
			<li><strong>From:</strong> %s</li>
			<li><strong>To:</strong> %s</li>
			<li><strong>Requested:</strong> %s</li>
		</ul>
		<p>Please follow up with the receiving pharmacy.</p>
	`, transfer.CreatedBy.Name, transfer.PatientName, transfer.Medication,
		transfer.FromPharmacy.Name, transfer.ToPharmacy.Name,
		transfer.CreatedAt.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(transfer.CreatedBy.Email, subject, body)
}
