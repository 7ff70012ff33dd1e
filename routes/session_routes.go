package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func SessionRoutes(app *fiber.App, h *handlers.SessionHandler, db *gorm.DB) {
	protected := middleware.Protected()
	tutorOnly := middleware.RoleRequired(db, models.RoleTutor)
	adminOnly := middleware.RoleRequired(db, models.RoleAdmin)

	app.Get("/study-sessions", h.ListSessions)
	app.Get("/all-study-sessions", h.ListAllSessions)
	app.Get("/study-sessions/detail/:id", h.GetSession)
	app.Get("/total-sessions", h.CountApprovedSessions)

	app.Get("/study-sessions/tutor/:email", protected, tutorOnly, h.ListTutorSessions)
	app.Post("/study-sessions", protected, tutorOnly, h.CreateSession)
	app.Patch("/study-sessions/update/:id", protected, tutorOnly, h.UpdateSession)
	app.Delete("/study-sessions/delete/:id", protected, tutorOnly, h.DeleteSession)

	app.Patch("/study-sessions/update-by-admin/:id", protected, adminOnly, h.UpdateSessionByAdmin)
	app.Delete("/study-sessions/delete-by-admin/:id", protected, adminOnly, h.DeleteSessionByAdmin)
}
