package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func TutorRoutes(app *fiber.App, h *handlers.TutorHandler, db *gorm.DB) {
	tutor := app.Group("/api/tutor", middleware.Protected(), middleware.RoleRequired(db, models.RoleTutor))
	tutor.Get("/ratings/:email", h.GetAverageRating)
	tutor.Get("/revenue/:email", h.GetRevenue)
}
