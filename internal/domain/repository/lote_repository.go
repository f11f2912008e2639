package repository

import (
	"time"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
)

// LoteRepository define el puerto de persistencia de lotes de descarga
// y sus detalles. Las mutaciones se usan siempre dentro de una
// transacción (ver TxRunner del motor de lotes).
type LoteRepository interface {
	// Crear inserta un lote pendiente y devuelve su ID.
	Crear(creadoEn time.Time) (int64, error)
	AgregarDetalle(d *entity.LoteDetalle) error

	GetByID(id int64) (*entity.Lote, error)
	// GetForUpdate lee el lote bloqueando la fila (SELECT ... FOR UPDATE)
	// para serializar las transiciones de estado concurrentes.
	GetForUpdate(id int64) (*entity.Lote, error)

	Detalles(loteID int64) ([]*entity.LoteDetalle, error)
	DetalleRMAIDs(loteID int64) ([]int64, error)

	ActualizarEstado(id int64, estado string, confirmadoEn *time.Time) error

	// EliminarDetalles borra las líneas del lote; Eliminar borra el lote
	// y devuelve filas afectadas (0 = lote inexistente).
	EliminarDetalles(loteID int64) (int64, error)
	Eliminar(id int64) (int64, error)

	// Listar devuelve los lotes más recientes con su total de líneas.
	Listar(limit int) ([]*entity.LoteResumen, error)
}
