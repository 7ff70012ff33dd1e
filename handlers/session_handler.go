package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"github.com/tutorgalaxy/study_platform/notifications"
	"gorm.io/gorm"
)

type SessionHandler struct {
	DB *gorm.DB
}

func NewSessionHandler(db *gorm.DB) *SessionHandler {
	return &SessionHandler{DB: db}
}

// ListSessions is the public dashboard feed: optional status filter,
// optional result cap, newest first.
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	query := h.DB.Model(&models.StudySession{}).Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if limit, _ := strconv.Atoi(c.Query("limit")); limit > 0 {
		query = query.Limit(limit)
	}

	var sessions []models.StudySession
	if err := query.Find(&sessions).Error; err != nil {
		return err
	}
	return c.JSON(sessions)
}

// ListAllSessions is the admin review queue: oldest first so submissions
// are reviewed in arrival order, paginated by page/limit.
func (h *SessionHandler) ListAllSessions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	offset := page * limit

	var count int64
	if err := h.DB.Model(&models.StudySession{}).Count(&count).Error; err != nil {
		return err
	}

	var sessions []models.StudySession
	err := h.DB.Order("created_at asc").
		Offset(offset).Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"sessions": sessions, "count": count})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var session models.StudySession
	if err := h.DB.First(&session, "id = ?", id).Error; err != nil {
		return c.JSON(nil)
	}
	return c.JSON(session)
}

func (h *SessionHandler) CountApprovedSessions(c *fiber.Ctx) error {
	var count int64
	err := h.DB.Model(&models.StudySession{}).
		Where("status = ?", models.SessionApproved).
		Count(&count).Error
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"total_sessions": count})
}

// ListTutorSessions returns the caller's own sessions, optionally
// filtered by status (the tutor dashboard tabs).
func (h *SessionHandler) ListTutorSessions(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	query := h.DB.Where("tutor_email = ?", email).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.StudySession
	if err := query.Find(&sessions).Error; err != nil {
		return err
	}
	return c.JSON(sessions)
}

type SessionRequest struct {
	Title                 string `json:"title" validate:"required"`
	TutorName             string `json:"tutor_name"`
	Description           string `json:"description"`
	RegistrationStartDate string `json:"registration_start_date"`
	RegistrationEndDate   string `json:"registration_end_date"`
	ClassStartDate        string `json:"class_start_date"`
	ClassEndDate          string `json:"class_end_date"`
	Duration              string `json:"duration"`
}

// CreateSession enters a session into the approval workflow. Whatever the
// client sends, a new session starts out pending with a zero fee; both are
// admin territory.
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := models.StudySession{
		Title:                 req.Title,
		TutorName:             req.TutorName,
		TutorEmail:            middleware.TokenEmail(c),
		Description:           req.Description,
		RegistrationStartDate: req.RegistrationStartDate,
		RegistrationEndDate:   req.RegistrationEndDate,
		ClassStartDate:        req.ClassStartDate,
		ClassEndDate:          req.ClassEndDate,
		Duration:              req.Duration,
		Status:                models.SessionPending,
	}
	if err := h.DB.Create(&session).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// UpdateSession is the tutor resubmission path: edits put the session back
// into pending and drop any rejection metadata, whatever state it was in.
func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	session, err := h.ownSession(c)
	if err != nil {
		return err
	}

	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session.Title = req.Title
	session.TutorName = req.TutorName
	session.Description = req.Description
	session.RegistrationStartDate = req.RegistrationStartDate
	session.RegistrationEndDate = req.RegistrationEndDate
	session.ClassStartDate = req.ClassStartDate
	session.ClassEndDate = req.ClassEndDate
	session.Duration = req.Duration
	session.Status = models.SessionPending
	session.RejectionReason = nil
	session.RejectionFeedback = nil

	if err := h.DB.Save(session).Error; err != nil {
		return err
	}
	return c.JSON(session)
}

// DeleteSession lets a tutor withdraw a submission. Once a session has
// been approved it is off-limits to the tutor; retiring it is the admin
// path.
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	session, err := h.ownSession(c)
	if err != nil {
		return err
	}

	if session.Status == models.SessionApproved {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "approved sessions cannot be deleted by their tutor",
		})
	}

	if err := h.DB.Delete(session).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Session deleted successfully"})
}

type AdminSessionUpdateRequest struct {
	Status            string  `json:"status" validate:"required,oneof=approved rejected"`
	RegistrationFee   float64 `json:"registration_fee" validate:"omitempty,gte=0"`
	RejectionReason   string  `json:"rejection_reason"`
	RejectionFeedback string  `json:"rejection_feedback"`
}

// UpdateSessionByAdmin settles the approval workflow: approve with a
// registration fee, or reject with reason and feedback for the tutor.
func (h *SessionHandler) UpdateSessionByAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var session models.StudySession
	if err := h.DB.First(&session, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var req AdminSessionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Status == models.SessionApproved {
		session.Status = models.SessionApproved
		session.RegistrationFee = req.RegistrationFee
		session.RejectionReason = nil
		session.RejectionFeedback = nil
	} else {
		session.Status = models.SessionRejected
		session.RejectionReason = &req.RejectionReason
		session.RejectionFeedback = &req.RejectionFeedback
	}

	if err := h.DB.Save(&session).Error; err != nil {
		return err
	}

	go h.notifyTutor(session)

	return c.JSON(session)
}

// DeleteSessionByAdmin retires a session that completed the approval
// workflow. Anything still pending or rejected belongs to the tutor and
// must go through the tutor path instead.
func (h *SessionHandler) DeleteSessionByAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var session models.StudySession
	if err := h.DB.First(&session, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	if session.Status != models.SessionApproved {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "only approved sessions can be deleted by an admin",
		})
	}

	if err := h.DB.Delete(&session).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Session deleted successfully"})
}

func (h *SessionHandler) ownSession(c *fiber.Ctx) (*models.StudySession, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	var session models.StudySession
	if err := h.DB.First(&session, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	if session.TutorEmail != middleware.TokenEmail(c) {
		return nil, fiber.NewError(fiber.StatusForbidden, "forbidden access")
	}
	return &session, nil
}

func (h *SessionHandler) notifyTutor(session models.StudySession) {
	if session.Status == models.SessionApproved {
		notifications.SendEmail(
			session.TutorName,
			session.TutorEmail,
			"Your Study Session Was Approved",
			fmt.Sprintf("<h1>Session Approved</h1><p>Your session <b>%s</b> is now live with a registration fee of $%.2f.</p>", session.Title, session.RegistrationFee),
		)
		return
	}

	reason := ""
	if session.RejectionReason != nil {
		reason = *session.RejectionReason
	}
	notifications.SendEmail(
		session.TutorName,
		session.TutorEmail,
		"Your Study Session Was Rejected",
		fmt.Sprintf("<h1>Session Rejected</h1><p>Your session <b>%s</b> was not approved.</p><p><b>Reason:</b> %s</p><p>You can edit and resubmit it from your dashboard.</p>", session.Title, reason),
	)
}
