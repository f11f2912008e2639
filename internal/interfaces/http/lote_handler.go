package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/lotes"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/infrastructure/pdf"
)

// LoteHandler maneja el ciclo de vida de los lotes de descarga (protegido).
type LoteHandler struct {
	uc         *lotes.UseCase
	manifiesto *pdf.ManifiestoGenerator
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *lotes.UseCase, manifiesto *pdf.ManifiestoGenerator) *LoteHandler {
	return &LoteHandler{uc: uc, manifiesto: manifiesto}
}

// Crear POST /api/lotes — crea un lote pendiente con sus líneas.
func (h *LoteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	id, err := h.uc.CrearLote(c.UserContext(), in.Items)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.LoteResponse{
		ID:       id,
		Estado:   entity.LoteEstadoPendiente,
		Detalles: len(in.Items),
	}))
}

// Listar GET /api/lotes — últimos lotes con su total de líneas.
func (h *LoteHandler) Listar(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	out, err := h.uc.ListarLotes(limit)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Detalle GET /api/lotes/:id — lote con sus líneas.
func (h *LoteHandler) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	lote, detalles, err := h.uc.DetalleLote(int64(id))
	if err != nil {
		return respuestaError(c, err)
	}
	lineas := make([]dto.LoteDetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		lineas = append(lineas, dto.LoteDetalleResponse{
			ID: d.ID, RMAID: d.RMAID, Modelo: d.Modelo, Cantidad: d.Cantidad, OP: d.OP,
		})
	}
	return c.JSON(dto.OK(fiber.Map{
		"lote": dto.LoteResponse{
			ID:           lote.ID,
			Estado:       lote.Estado,
			CreadoEn:     lote.CreadoEn,
			ConfirmadoEn: lote.ConfirmadoEn,
			Detalles:     len(lineas),
		},
		"detalles": lineas,
	}))
}

// Confirmar PUT /api/lotes/:id/confirmar — pendiente → confirmado,
// descontando los RMA del stock.
func (h *LoteHandler) Confirmar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	n, err := h.uc.ConfirmarLote(c.UserContext(), int64(id))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("lote confirmado", dto.ConfirmarLoteResponse{
		LoteID:          int64(id),
		Estado:          entity.LoteEstadoConfirmado,
		RMAActualizados: n,
	}))
}

// Revertir PUT /api/lotes/:id/revertir — confirmado → pendiente,
// restaurando los RMA al stock.
func (h *LoteHandler) Revertir(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	n, err := h.uc.RevertirLote(c.UserContext(), int64(id))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("lote revertido", dto.ConfirmarLoteResponse{
		LoteID:          int64(id),
		Estado:          entity.LoteEstadoPendiente,
		RMAActualizados: n,
	}))
}

// Eliminar DELETE /api/lotes/:id — borra líneas y lote. No restaura
// en_stock aunque el lote esté confirmado.
func (h *LoteHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.EliminarLote(c.UserContext(), int64(id)); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("lote eliminado", nil))
}

// Manifiesto GET /api/lotes/:id/manifiesto — PDF imprimible del lote.
func (h *LoteHandler) Manifiesto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	lote, detalles, err := h.uc.DetalleLote(int64(id))
	if err != nil {
		return respuestaError(c, err)
	}
	lineas := make([]entity.LoteDetalle, 0, len(detalles))
	for _, d := range detalles {
		lineas = append(lineas, *d)
	}
	doc, err := h.manifiesto.Generar(lote, lineas)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="manifiesto-lote.pdf"`)
	return c.Send(doc)
}
