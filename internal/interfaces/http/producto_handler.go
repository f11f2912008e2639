package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/inventario"
	"github.com/almacenpro/rma-backend/internal/application/productos"
)

// ProductoHandler maneja el catálogo de productos (protegido).
type ProductoHandler struct {
	uc           *productos.UseCase
	inventarioUC *inventario.UseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *productos.UseCase, inventarioUC *inventario.UseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc, inventarioUC: inventarioUC}
}

// Crear POST /api/productos.
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Listar GET /api/productos — paginado.
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.Listar(page)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID GET /api/productos/:id.
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
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

// Eliminar DELETE /api/productos/:id.
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.Eliminar(int64(id)); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("producto eliminado", nil))
}

// FijarBulto PUT /api/productos/:id/bulto — unidades por bulto.
func (h *ProductoHandler) FijarBulto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	var in dto.UnidadesBultoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if err := h.inventarioUC.FijarUnidadesBulto(int64(id), in.Cantidad); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("unidades por bulto actualizadas", nil))
}
