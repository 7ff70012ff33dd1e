package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	var count int64
	if err := h.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	var users []models.User
	err := h.DB.Order("created_at desc").
		Offset(page * limit).Limit(limit).
		Find(&users).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"users":        users,
		"count":        count,
		"total_pages":  int(math.Ceil(float64(count) / float64(limit))),
		"current_page": page,
	})
}

// SearchUsers matches name or email, case-insensitive.
func (h *AdminHandler) SearchUsers(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return h.ListUsers(c)
	}

	term := "%" + strings.ToLower(q) + "%"
	var users []models.User
	err := h.DB.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", term, term).
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return err
	}
	return c.JSON(users)
}
