package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func MaterialRoutes(app *fiber.App, h *handlers.MaterialHandler, db *gorm.DB) {
	protected := middleware.Protected()
	tutorOnly := middleware.RoleRequired(db, models.RoleTutor)
	adminOnly := middleware.RoleRequired(db, models.RoleAdmin)

	app.Get("/materials/session/:id", h.ListSessionMaterials)

	app.Post("/materials", protected, tutorOnly, h.CreateMaterial)
	app.Post("/materials/upload", protected, tutorOnly, h.UploadMaterialImage)
	app.Get("/materials/tutor/:email", protected, tutorOnly, h.ListTutorMaterials)

	app.Get("/materials", protected, adminOnly, h.ListAllMaterials)

	// owning tutor or admin, checked in the handler against the live role
	app.Patch("/materials/update/:id", protected, h.UpdateMaterial)
	app.Delete("/materials/delete/:id", protected, h.DeleteMaterial)
}
