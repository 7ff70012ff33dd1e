package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler, db *gorm.DB) {
	app.Put("/reviews", middleware.Protected(), middleware.RoleRequired(db, models.RoleStudent), h.UpsertReview)
	app.Get("/reviews/:sessionId", h.ListSessionReviews)
}
