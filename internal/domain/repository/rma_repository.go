package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// RMARepository define el puerto de persistencia de unidades devueltas.
// MarcarEnStock se usa dentro de transacciones del ciclo de vida de lotes.
type RMARepository interface {
	Crear(r *entity.RMA) error
	GetByID(id int64) (*entity.RMA, error)
	Listar(limit, offset int, soloEnStock bool) ([]*entity.RMA, error)
	Eliminar(id int64) error

	// MarcarEnStock fija en_stock para todos los ids en un único UPDATE.
	// Devuelve la cantidad de registros actualizados.
	MarcarEnStock(ids []int64, enStock bool) (int64, error)
}
