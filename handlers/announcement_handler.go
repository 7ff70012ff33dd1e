package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/models"
	"github.com/tutorgalaxy/study_platform/websocket"
	"gorm.io/gorm"
)

type AnnouncementHandler struct {
	DB  *gorm.DB
	Hub *websocket.Hub
}

func NewAnnouncementHandler(db *gorm.DB, hub *websocket.Hub) *AnnouncementHandler {
	return &AnnouncementHandler{DB: db, Hub: hub}
}

type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateAnnouncement appends a platform-wide announcement and pushes it to
// every connected websocket client. Announcements are never edited or
// removed.
func (h *AnnouncementHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	announcement := models.Announcement{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.DB.Create(&announcement).Error; err != nil {
		return err
	}

	if h.Hub != nil {
		h.Hub.Publish(announcement)
	}

	return c.Status(fiber.StatusCreated).JSON(announcement)
}

func (h *AnnouncementHandler) ListAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	err := h.DB.Order("created_at desc").Find(&announcements).Error
	if err != nil {
		return err
	}
	return c.JSON(announcements)
}
