package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/catalogo"
	"github.com/almacenpro/rma-backend/internal/application/dto"
)

// CatalogoHandler maneja clientes, marcas y transportistas (protegido).
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearCliente(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.CrearCliente(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

func (h *CatalogoHandler) ListarClientes(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListarClientes(page)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

func (h *CatalogoHandler) EliminarCliente(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.EliminarCliente(int64(id)); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("cliente eliminado", nil))
}

// ── Marcas ────────────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearMarca(c *fiber.Ctx) error {
	var in dto.CrearMarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.CrearMarca(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

func (h *CatalogoHandler) ListarMarcas(c *fiber.Ctx) error {
	out, err := h.uc.ListarMarcas()
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

func (h *CatalogoHandler) EliminarMarca(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.EliminarMarca(int64(id)); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("marca eliminada", nil))
}

// ── Transportes ───────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearTransporte(c *fiber.Ctx) error {
	var in dto.CrearTransporteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.CrearTransporte(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

func (h *CatalogoHandler) ListarTransportes(c *fiber.Ctx) error {
	out, err := h.uc.ListarTransportes()
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

func (h *CatalogoHandler) EliminarTransporte(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.EliminarTransporte(int64(id)); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("transporte eliminado", nil))
}
