package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

// Notes are strictly personal: every operation is scoped to the token
// email, there is no sharing path.
type NoteHandler struct {
	DB *gorm.DB
}

func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{DB: db}
}

type NoteRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	note := models.Note{
		StudentEmail: middleware.TokenEmail(c),
		Title:        req.Title,
		Description:  req.Description,
	}
	if err := h.DB.Create(&note).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	var notes []models.Note
	err := h.DB.Where("student_email = ?", email).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.ownNote(c)
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	note, err := h.ownNote(c)
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	note.Title = req.Title
	note.Description = req.Description
	if err := h.DB.Save(note).Error; err != nil {
		return err
	}
	return c.JSON(note)
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	note, err := h.ownNote(c)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(note).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}

func (h *NoteHandler) ownNote(c *fiber.Ctx) (*models.Note, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var note models.Note
	if err := h.DB.First(&note, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Note not found")
	}
	if note.StudentEmail != middleware.TokenEmail(c) {
		return nil, fiber.NewError(fiber.StatusForbidden, "forbidden access")
	}
	return &note, nil
}
