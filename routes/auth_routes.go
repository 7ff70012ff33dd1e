package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	app.Post("/jwt", h.IssueToken)
}
