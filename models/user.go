package models

import (
	"time"
)

type UserRole string

const (
	RoleDoctor     UserRole = "doctor"
	RolePharmacist UserRole = "pharmacist"
)

// Valid reports whether r is one of the two supported roles.
func (r UserRole) Valid() bool {
	return r == RoleDoctor || r == RolePharmacist
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	Role      UserRole  `json:"role" gorm:"default:doctor"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserResponse is the outward projection of a user. The password hash has
// no field here, so it can never serialize.
type UserResponse struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
