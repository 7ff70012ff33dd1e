package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
)

func UserRoutes(app *fiber.App, h *handlers.UserHandler) {
	app.Post("/users", h.CreateUser)
	app.Get("/users/role/:email", h.GetUserByEmail)
	app.Patch("/api/user/update-profile/:email", h.UpdateProfile)
}
