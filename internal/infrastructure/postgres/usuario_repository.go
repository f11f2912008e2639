package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Crear persiste un usuario.
func (r *UsuarioRepo) Crear(u *entity.Usuario) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO usuarios (id, email, nombre, password_hash, rol, creado_en)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Nombre, u.PasswordHash, u.Rol, u.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email (nil si no existe).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(),
		`SELECT id, email, nombre, password_hash, rol, creado_en FROM usuarios WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Nombre, &u.PasswordHash, &u.Rol, &u.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
