package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia de usuarios.
type UsuarioRepository interface {
	Crear(u *entity.Usuario) error
	GetByEmail(email string) (*entity.Usuario, error)
}
