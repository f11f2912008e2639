package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// MarcaRepository define el puerto de persistencia de marcas.
type MarcaRepository interface {
	Crear(m *entity.Marca) error
	Listar() ([]*entity.Marca, error)
	Eliminar(id int64) error
}
