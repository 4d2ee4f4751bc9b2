package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pmmagency/agency-backend/internal/dto"
	"github.com/pmmagency/agency-backend/internal/models"
	"github.com/pmmagency/agency-backend/internal/session"
	"gorm.io/gorm"
)

// RoleRequired allows the request through when the JWT role claim matches
// one of the given roles. The claim is cross-checked against the user row
// so a role change takes effect without waiting for token expiry.
func RoleRequired(db *gorm.DB, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := session.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Insufficient permissions",
		})
	}
}

// AdminRequired is shorthand for RoleRequired(db, models.RoleAdmin).
func AdminRequired(db *gorm.DB) fiber.Handler {
	return RoleRequired(db, models.RoleAdmin)
}
