package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/pharmalink/pharmalink/models"
)

// Secret returns the shared token signing key.
func Secret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "pharmalink-demo-key" // demo fallback, set JWT_SECRET in production
	}
	return secret
}

// CreateToken signs an HS256 credential asserting the user's identity and
// role for the next 24 hours.
func CreateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(Secret()))
}
