package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/tutorgalaxy/study_platform/configs"
)

// Token lifetime is fixed; expiry is the only invalidation path.
const tokenTTL = time.Hour

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=student tutor admin"`
}

// IssueToken signs whatever identity claim is posted to it. Sign-in
// itself happens at the external identity provider; by the time a client
// calls this, the claim is considered authenticated. Authorization is not
// decided here either: protected routes re-read the stored role on every
// request.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := jwt.MapClaims{
		"email": req.Email,
		"role":  req.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": t})
}
