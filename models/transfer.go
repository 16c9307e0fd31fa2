package models

import (
	"time"

	"gorm.io/gorm"
)

type TransferStatus string

const (
	StatusPending   TransferStatus = "pending"
	StatusApproved  TransferStatus = "approved"
	StatusCompleted TransferStatus = "completed"
)

// Valid reports whether s is one of the three transfer states. Transitions
// between states are unrestricted; this only fences the value set.
func (s TransferStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted:
		return true
	}
	return false
}

type Transfer struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	PatientName    string         `json:"patient_name"`
	Medication     string         `json:"medication"`
	FromPharmacyID uint           `json:"from_pharmacy_id"`
	FromPharmacy   Pharmacy       `json:"from_pharmacy,omitempty" gorm:"foreignKey:FromPharmacyID"`
	ToPharmacyID   uint           `json:"to_pharmacy_id"`
	ToPharmacy     Pharmacy       `json:"to_pharmacy,omitempty" gorm:"foreignKey:ToPharmacyID"`
	Status         TransferStatus `json:"status"`
	CreatedByID    uint           `json:"created_by_id"`
	CreatedBy      User           `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = StatusPending
	}
	return nil
}

// TransferResponse is the wire shape of a transfer with its relations
// nested. Unresolved relations marshal as null.
type TransferResponse struct {
	ID           uint              `json:"id"`
	PatientName  string            `json:"patient_name"`
	Medication   string            `json:"medication"`
	FromPharmacy *PharmacyResponse `json:"from_pharmacy"`
	ToPharmacy   *PharmacyResponse `json:"to_pharmacy"`
	Status       TransferStatus    `json:"status"`
	CreatedBy    *UserResponse     `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Response assembles the wire shape from relations the caller has already
// fetched. It never reaches back into the store, so a transfer with a
// dangling pharmacy or user reference renders those fields as null.
func (t *Transfer) Response() TransferResponse {
	resp := TransferResponse{
		ID:          t.ID,
		PatientName: t.PatientName,
		Medication:  t.Medication,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
	if t.FromPharmacy.ID != 0 {
		from := t.FromPharmacy.Response()
		resp.FromPharmacy = &from
	}
	if t.ToPharmacy.ID != 0 {
		to := t.ToPharmacy.Response()
		resp.ToPharmacy = &to
	}
	if t.CreatedBy.ID != 0 {
		by := t.CreatedBy.Response()
		resp.CreatedBy = &by
	}
	return resp
}
