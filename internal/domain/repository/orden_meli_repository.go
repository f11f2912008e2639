package repository

import (
	"time"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
)

// OrdenMeliRepository define el puerto de persistencia de órdenes
// sincronizadas desde el marketplace.
type OrdenMeliRepository interface {
	// Upsert inserta la orden o actualiza estado/envío si ya existe.
	Upsert(o *entity.OrdenMeli) error
	Listar(limit, offset int) ([]*entity.OrdenMeli, error)
	// UltimaFechaCreada devuelve la fecha de creación más reciente entre
	// las órdenes ya sincronizadas (nil si no hay ninguna).
	UltimaFechaCreada() (*time.Time, error)
}
