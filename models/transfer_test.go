package models

import (
	"testing"
	"time"
)

func TestTransferStatusValid(t *testing.T) {
	for _, s := range []TransferStatus{StatusPending, StatusApproved, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []TransferStatus{"", "shipped", "Pending", "done"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestTransferDefaultsToPending(t *testing.T) {
	transfer := &Transfer{}
	if err := transfer.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if transfer.Status != StatusPending {
		t.Errorf("expected pending, got %q", transfer.Status)
	}

	transfer = &Transfer{Status: StatusApproved}
	if err := transfer.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if transfer.Status != StatusApproved {
		t.Errorf("expected an explicit status to be kept, got %q", transfer.Status)
	}
}

func TestTransferResponseAssemblesRelations(t *testing.T) {
	now := time.Now()
	transfer := Transfer{
		ID:          7,
		PatientName: "John Doe",
		Medication:  "Lisinopril 10mg",
		FromPharmacy: Pharmacy{
			ID:   1,
			Name: "Central Pharmacy",
		},
		ToPharmacy: Pharmacy{
			ID:   2,
			Name: "Eastside Pharmacy",
		},
		Status: StatusPending,
		CreatedBy: User{
			ID:       3,
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "hash-never-shown",
			Role:     RoleDoctor,
		},
		CreatedAt: now,
	}

	resp := transfer.Response()
	if resp.FromPharmacy == nil || resp.FromPharmacy.Name != "Central Pharmacy" {
		t.Errorf("unexpected from pharmacy projection: %+v", resp.FromPharmacy)
	}
	if resp.ToPharmacy == nil || resp.ToPharmacy.ID != 2 {
		t.Errorf("unexpected to pharmacy projection: %+v", resp.ToPharmacy)
	}
	if resp.CreatedBy == nil || resp.CreatedBy.Email != "alice@example.com" {
		t.Errorf("unexpected creator projection: %+v", resp.CreatedBy)
	}
	if !resp.CreatedAt.Equal(now) {
		t.Errorf("expected creation time to survive projection")
	}
}

func TestTransferResponseDanglingRelationsAreNil(t *testing.T) {
	transfer := Transfer{
		ID:             8,
		PatientName:    "Jane Doe",
		Medication:     "Metformin 500mg",
		FromPharmacyID: 404,
		ToPharmacyID:   405,
		Status:         StatusPending,
	}

	resp := transfer.Response()
	if resp.FromPharmacy != nil || resp.ToPharmacy != nil || resp.CreatedBy != nil {
		t.Errorf("expected unresolved relations to project as nil: %+v", resp)
	}
}
