package postgres

import (
	"context"
	"fmt"

	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementación de MarcaRepository sobre PostgreSQL.
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

// Crear persiste una marca y asigna su ID.
func (r *MarcaRepo) Crear(m *entity.Marca) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO marcas (nombre) VALUES ($1) RETURNING id`, m.Nombre,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

// Listar devuelve todas las marcas por nombre.
func (r *MarcaRepo) Listar() ([]*entity.Marca, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM marcas ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Eliminar borra una marca por ID.
func (r *MarcaRepo) Eliminar(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM marcas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete marca: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
