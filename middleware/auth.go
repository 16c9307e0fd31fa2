package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/pharmalink/pharmalink/models"
	"github.com/pharmalink/pharmalink/utils"
)

// Protected guards a route with bearer-token auth. The signature and
// expiry are checked first, then the subject is resolved with a single
// read against the store. Missing header, bad prefix, forged token,
// expired token and unknown subject all collapse to the same 401; callers
// cannot tell the causes apart.
func Protected(db *gorm.DB) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(utils.Secret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}

			id, ok := claims["id"].(float64)
			if !ok {
				return unauthorized(c)
			}

			var user models.User
			if db.First(&user, uint(id)).RowsAffected == 0 {
				return unauthorized(c)
			}

			c.Locals("currentUser", &user)
			return c.Next()
		},
	})
}

// CurrentUser returns the user resolved by Protected, or nil outside a
// guarded route.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

func jwtError(c *fiber.Ctx, err error) error {
	return unauthorized(c)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
