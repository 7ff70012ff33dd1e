package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{DB: db}
}

type UpsertReviewRequest struct {
	SessionID   string  `json:"session_id" validate:"required,uuid"`
	StudentName string  `json:"student_name"`
	Rating      float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment     string  `json:"comment"`
}

// UpsertReview writes the one review a student gets per session. A second
// submission overwrites the first, last write wins.
func (h *ReviewHandler) UpsertReview(c *fiber.Ctx) error {
	var req UpsertReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sessionID, _ := uuid.Parse(req.SessionID)

	review := models.Review{
		SessionID:    sessionID,
		StudentEmail: middleware.TokenEmail(c),
		StudentName:  req.StudentName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "student_email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_name", "rating", "comment", "updated_at",
		}),
	}).Create(&review).Error
	if err != nil {
		return err
	}

	return c.JSON(review)
}

// ListSessionReviews shows the latest reviews on a session detail page,
// capped at six.
func (h *ReviewHandler) ListSessionReviews(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var reviews []models.Review
	err = h.DB.Where("session_id = ?", sessionID).
		Order("created_at desc").
		Limit(6).
		Find(&reviews).Error
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
