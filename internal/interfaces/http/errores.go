package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
)

// respuestaError mapea los errores de dominio a su status HTTP, con el
// sobre JSON estándar. Todo el borde HTTP pasa por acá para que el
// mismo error siempre salga con el mismo código.
func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrInvalidInput), domain.EsErrorDeEstado(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error interno"))
	}
}
