package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

type CreateUserRequest struct {
	FullName string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Role     string  `json:"role" validate:"omitempty,oneof=student tutor"`
	PhotoURL *string `json:"photo_url"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// CreateUser stores a user the first time an identity shows up. Replays
// answer {exist: true} instead of erroring, which is what the frontend
// keys on after every social login.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{"exist": true})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
		PhotoURL: req.PhotoURL,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"exist": false, "user": user})
}

// GetUserByEmail backs the role lookup the frontend performs after login.
// An unknown email answers null, not 404, matching the historical contract.
func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return err
	}
	return c.JSON(user)
}

type UpdateProfileRequest struct {
	FullName *string `json:"name"`
	PhotoURL *string `json:"photo_url"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdateProfile mutates the profile subset only; email and role are not
// reachable from here.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhotoURL != nil {
		user.PhotoURL = req.PhotoURL
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return err
	}
	return c.JSON(user)
}
