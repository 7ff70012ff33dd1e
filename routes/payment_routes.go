package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler) {
	app.Post("/create-payment-intent", h.CreatePaymentIntent)
}
