package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler, db *gorm.DB) {
	protected := middleware.Protected()
	studentOnly := middleware.RoleRequired(db, models.RoleStudent)

	app.Post("/bookings", protected, studentOnly, h.CreateBooking)
	app.Get("/bookings/session-ids/:email", protected, studentOnly, h.ListBookedSessionIDs)
	app.Get("/bookings/:email", protected, studentOnly, h.ListStudentBookings)
}
