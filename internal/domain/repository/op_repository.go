package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// RecepcionOP es una entrada del registro de recepción por línea de OP.
type RecepcionOP struct {
	DetalleID int64
	Recibido  int
}

// OPRepository define el puerto de persistencia de órdenes de producción
// y sus líneas. Crear/AgregarDetalle y ActualizarRecibidos se usan
// dentro de una transacción.
type OPRepository interface {
	// Crear inserta la OP y asigna su ID.
	Crear(op *entity.OrdenProduccion) error
	AgregarDetalle(d *entity.OPDetalle) error

	GetByID(id int64) (*entity.OrdenProduccion, error)
	Listar(limit, offset int) ([]*entity.OrdenProduccion, error)
	Detalles(opID int64) ([]*entity.OPDetalle, error)

	// ActualizarRecibidos aplica el batch de cantidades recibidas en un
	// único UPDATE (CASE por id de detalle). Devuelve filas afectadas.
	ActualizarRecibidos(opID int64, recepciones []RecepcionOP) (int64, error)
	// ActualizarEstado devuelve filas afectadas (0 = OP inexistente).
	ActualizarEstado(id int64, estado string) (int64, error)
}
