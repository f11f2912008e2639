package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/auth"
	"github.com/almacenpro/rma-backend/internal/application/dto"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	u, err := h.uc.Register(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{
		"user_id": u.ID,
		"email":   u.Email,
		"rol":     u.Rol,
	}))
}

// Login POST /api/auth/login — responde 401 sin distinguir email
// inexistente de password incorrecto.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}
