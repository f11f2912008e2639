package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// ClienteRepository define el puerto de persistencia de clientes.
type ClienteRepository interface {
	Crear(c *entity.Cliente) error
	GetByID(id int64) (*entity.Cliente, error)
	Listar(limit, offset int) ([]*entity.Cliente, error)
	Eliminar(id int64) error
}
