package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/tutorgalaxy/study_platform/configs"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

type BookingHandler struct {
	DB *gorm.DB
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{DB: db}
}

type CreateBookingRequest struct {
	SessionID       string  `json:"session_id" validate:"required,uuid"`
	Amount          float64 `json:"amount" validate:"gte=0"`
	PaymentIntentID *string `json:"payment_intent_id"`
}

// CreateBooking records a student's booking against a session. Whether the
// same student may book the same session twice is a policy switch
// (ALLOW_DUPLICATE_BOOKINGS); the historical behavior is to allow it.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sessionID, _ := uuid.Parse(req.SessionID)

	var session models.StudySession
	if err := h.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	studentEmail := middleware.TokenEmail(c)

	if config.ConfigOr("ALLOW_DUPLICATE_BOOKINGS", "true") != "true" {
		var count int64
		h.DB.Model(&models.Booking{}).
			Where("session_id = ? AND student_email = ?", sessionID, studentEmail).
			Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "you have already booked this session",
			})
		}
	}

	booking := models.Booking{
		SessionID:       session.ID,
		SessionTitle:    session.Title,
		StudentEmail:    studentEmail,
		TutorEmail:      session.TutorEmail,
		Amount:          req.Amount,
		PaymentIntentID: req.PaymentIntentID,
	}
	if err := h.DB.Create(&booking).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) ListStudentBookings(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	var bookings []models.Booking
	err := h.DB.Where("student_email = ?", email).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

// ListBookedSessionIDs answers just the session ids, which is all the
// frontend needs to flag already-booked sessions in a listing.
func (h *BookingHandler) ListBookedSessionIDs(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	var ids []uuid.UUID
	err := h.DB.Model(&models.Booking{}).
		Where("student_email = ?", email).
		Pluck("session_id", &ids).Error
	if err != nil {
		return err
	}
	return c.JSON(ids)
}
