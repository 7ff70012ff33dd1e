package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/payments"
)

type PaymentHandler struct {
	Stripe *payments.StripeService
}

func NewPaymentHandler(stripe *payments.StripeService) *PaymentHandler {
	return &PaymentHandler{Stripe: stripe}
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreatePaymentIntent proxies the amount to the payment gateway and hands
// the opaque client secret back to the frontend.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	intent, err := h.Stripe.CreatePaymentIntent(req.Price)
	if err != nil {
		log.Printf("🔥 CreatePaymentIntent failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "payment gateway error"})
	}

	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret})
}
