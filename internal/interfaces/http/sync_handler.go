package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/sync"
)

// SyncHandler maneja la sincronización de órdenes del marketplace
// (protegido). Nil cuando las credenciales no están configuradas.
type SyncHandler struct {
	uc *sync.UseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *sync.UseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Sincronizar POST /api/meli/sincronizar — corre una sincronización
// completa desde la última orden conocida.
func (h *SyncHandler) Sincronizar(c *fiber.Ctx) error {
	out, err := h.uc.Sincronizar(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OKMensaje("sincronización completada", out))
}

// Listar GET /api/meli/ordenes — órdenes sincronizadas, paginadas.
func (h *SyncHandler) Listar(c *fiber.Ctx) error {
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
