package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/op"
)

// OPHandler maneja órdenes de producción (protegido).
type OPHandler struct {
	uc *op.UseCase
}

// NewOPHandler construye el handler.
func NewOPHandler(uc *op.UseCase) *OPHandler {
	return &OPHandler{uc: uc}
}

// Crear POST /api/op — crea una orden abierta con sus líneas.
func (h *OPHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	id, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{"id": id}))
}

// Listar GET /api/op — paginado.
func (h *OPHandler) Listar(c *fiber.Ctx) error {
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

// Detalles GET /api/op/:id/detalles — líneas con cantidades recibidas.
func (h *OPHandler) Detalles(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	out, err := h.uc.Detalles(int64(id))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Recibir PUT /api/op/:id/recepcion — registra recepciones por línea y
// marca la orden recibida.
func (h *OPHandler) Recibir(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	var in dto.RecibirOPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	n, err := h.uc.Recibir(c.UserContext(), int64(id), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("recepción registrada", dto.FilasAfectadasResponse{Afectadas: n}))
}
