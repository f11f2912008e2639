package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/rma"
)

// RMAHandler maneja las unidades devueltas (protegido).
type RMAHandler struct {
	uc *rma.UseCase
}

// NewRMAHandler construye el handler.
func NewRMAHandler(uc *rma.UseCase) *RMAHandler {
	return &RMAHandler{uc: uc}
}

// Crear POST /api/rma — registra una devolución, en stock.
func (h *RMAHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearRMARequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Listar GET /api/rma — paginado; ?en_stock=true filtra disponibles.
func (h *RMAHandler) Listar(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	soloEnStock := c.QueryBool("en_stock", false)
	out, err := h.uc.Listar(page, soloEnStock)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID GET /api/rma/:id.
func (h *RMAHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Eliminar DELETE /api/rma/:id.
func (h *RMAHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.Eliminar(int64(id)); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("rma eliminado", nil))
}
