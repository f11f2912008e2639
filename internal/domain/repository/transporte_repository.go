package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// TransporteRepository define el puerto de persistencia de transportistas.
type TransporteRepository interface {
	Crear(t *entity.Transporte) error
	Listar() ([]*entity.Transporte, error)
	Eliminar(id int64) error
}
