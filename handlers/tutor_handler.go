package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

// Tutors keep 70% of every registration fee; the platform takes the rest.
const tutorShare = 0.7

type TutorHandler struct {
	DB *gorm.DB
}

func NewTutorHandler(db *gorm.DB) *TutorHandler {
	return &TutorHandler{DB: db}
}

// GetAverageRating averages the ratings of every review attached to the
// tutor's approved sessions. No matched review means no data, not a zero:
// a tutor who was never rated must not look like a one-star tutor.
func (h *TutorHandler) GetAverageRating(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	var result struct {
		Avg   float64
		Count int64
	}
	err := h.DB.Model(&models.Review{}).
		Joins("JOIN study_sessions ON study_sessions.id = reviews.session_id").
		Where("study_sessions.tutor_email = ? AND study_sessions.status = ?", email, models.SessionApproved).
		Select("COALESCE(AVG(reviews.rating), 0) as avg, COUNT(reviews.id) as count").
		Scan(&result).Error
	if err != nil {
		return err
	}

	if result.Count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no reviews found"})
	}

	return c.JSON(fiber.Map{
		"average_rating": result.Avg,
		"review_count":   result.Count,
	})
}

// GetRevenue sums the booking amounts across the tutor's sessions and
// reports the tutor's 70% share. Zero bookings is a defined no-data
// outcome rather than a zero-revenue report.
func (h *TutorHandler) GetRevenue(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	var result struct {
		Total float64
		Count int64
	}
	err := h.DB.Model(&models.Booking{}).
		Where("tutor_email = ?", email).
		Select("COALESCE(SUM(amount), 0) as total, COUNT(id) as count").
		Scan(&result).Error
	if err != nil {
		return err
	}

	if result.Count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no bookings found"})
	}

	return c.JSON(fiber.Map{
		"total_bookings": result.Count,
		"total_amount":   result.Total,
		"revenue":        result.Total * tutorShare,
	})
}
