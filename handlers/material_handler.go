package handlers

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/tutorgalaxy/study_platform/configs"
	"github.com/tutorgalaxy/study_platform/middleware"
	"github.com/tutorgalaxy/study_platform/models"
	"gorm.io/gorm"
)

type MaterialHandler struct {
	DB *gorm.DB
}

func NewMaterialHandler(db *gorm.DB) *MaterialHandler {
	return &MaterialHandler{DB: db}
}

type MaterialRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	Title     string `json:"title" validate:"required"`
	ImageURL  string `json:"image_url"`
	DriveLink string `json:"drive_link"`
}

func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var req MaterialRequest
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

	material := models.Material{
		SessionID:  session.ID,
		TutorEmail: middleware.TokenEmail(c),
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		DriveLink:  req.DriveLink,
	}
	if err := h.DB.Create(&material).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

// UploadMaterialImage pushes a material image to Cloudinary and hands the
// hosted URL back; the client then submits it with the material record.
func (h *MaterialHandler) UploadMaterialImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required."})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "upload service unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "study_platform_materials",
		PublicID: fmt.Sprintf("material_%s_%s", middleware.TokenEmail(c), file.Filename),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"image_url": uploadResult.SecureURL})
}

func (h *MaterialHandler) ListSessionMaterials(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var materials []models.Material
	if err := h.DB.Where("session_id = ?", sessionID).Find(&materials).Error; err != nil {
		return err
	}
	return c.JSON(materials)
}

func (h *MaterialHandler) ListTutorMaterials(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	var materials []models.Material
	err := h.DB.Where("tutor_email = ?", email).
		Order("created_at desc").
		Find(&materials).Error
	if err != nil {
		return err
	}
	return c.JSON(materials)
}

// ListAllMaterials is the admin moderation view.
func (h *MaterialHandler) ListAllMaterials(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	var count int64
	if err := h.DB.Model(&models.Material{}).Count(&count).Error; err != nil {
		return err
	}

	var materials []models.Material
	err := h.DB.Order("created_at desc").
		Offset(page * limit).Limit(limit).
		Find(&materials).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"materials":   materials,
		"count":       count,
		"total_pages": int(math.Ceil(float64(count) / float64(limit))),
	})
}

func (h *MaterialHandler) UpdateMaterial(c *fiber.Ctx) error {
	material, err := h.editableMaterial(c)
	if err != nil {
		return err
	}

	type UpdateRequest struct {
		Title     string `json:"title" validate:"required"`
		ImageURL  string `json:"image_url"`
		DriveLink string `json:"drive_link"`
	}
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	material.Title = req.Title
	material.ImageURL = req.ImageURL
	material.DriveLink = req.DriveLink
	if err := h.DB.Save(material).Error; err != nil {
		return err
	}
	return c.JSON(material)
}

func (h *MaterialHandler) DeleteMaterial(c *fiber.Ctx) error {
	material, err := h.editableMaterial(c)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(material).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Material deleted successfully"})
}

// editableMaterial loads the material and enforces the mutation rule:
// owning tutor or admin, with the role read live from storage.
func (h *MaterialHandler) editableMaterial(c *fiber.Ctx) (*models.Material, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid material id")
	}

	var material models.Material
	if err := h.DB.First(&material, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Material not found")
	}

	caller, err := currentUser(h.DB, c)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleAdmin && material.TutorEmail != caller.Email {
		return nil, fiber.NewError(fiber.StatusForbidden, "forbidden access")
	}
	return &material, nil
}
