package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func NoteRoutes(app *fiber.App, h *handlers.NoteHandler, db *gorm.DB) {
	protected := middleware.Protected()
	studentOnly := middleware.RoleRequired(db, models.RoleStudent)

	app.Post("/notes", protected, studentOnly, h.CreateNote)
	app.Get("/notes/detail/:id", protected, studentOnly, h.GetNote)
	app.Get("/notes/:email", protected, studentOnly, h.ListNotes)
	app.Patch("/notes/update/:id", protected, studentOnly, h.UpdateNote)
	app.Delete("/notes/:id", protected, studentOnly, h.DeleteNote)
}
