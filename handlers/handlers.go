package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

var validate = validator.New()

// currentUser resolves the caller from the token email against the users
// table, so role decisions always reflect the stored role.
func currentUser(db *gorm.DB, c *fiber.Ctx) (*models.User, error) {
	email := middleware.TokenEmail(c)
	if email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "forbidden access")
	}
	return &user, nil
}
