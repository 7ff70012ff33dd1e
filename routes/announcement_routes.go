package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	wshub "github.com/tutorgalaxy/study_platform/websocket"
	"gorm.io/gorm"
)

func AnnouncementRoutes(app *fiber.App, h *handlers.AnnouncementHandler, db *gorm.DB, hub *wshub.Hub) {
	app.Get("/announcements", h.ListAnnouncements)
	app.Post("/announcements", middleware.Protected(), middleware.RoleRequired(db, models.RoleAdmin), h.CreateAnnouncement)

	app.Use("/ws/announcements", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/announcements", websocket.New(hub.Serve))
}
