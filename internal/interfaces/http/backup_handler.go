package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/backup"
	"github.com/almacenpro/rma-backend/internal/application/dto"
)

// BackupHandler expone el volcado SQL de respaldo (solo admin).
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Exportar GET /api/backup — stremea el volcado SQL como descarga.
func (h *BackupHandler) Exportar(c *fiber.Ctx) error {
	nombre := fmt.Sprintf("respaldo-%s.sql", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/sql")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	if err := h.uc.Exportar(c.UserContext(), c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error generando el respaldo"))
	}
	return nil
}
