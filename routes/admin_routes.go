package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler, db *gorm.DB) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RoleRequired(db, models.RoleAdmin))
	admin.Get("/users", h.ListUsers)
	admin.Get("/search-user", h.SearchUsers)
}
