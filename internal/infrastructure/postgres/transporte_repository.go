package postgres

import (
	"context"
	"fmt"

	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

var _ repository.TransporteRepository = (*TransporteRepo)(nil)

// TransporteRepo implementación de TransporteRepository sobre PostgreSQL.
type TransporteRepo struct {
	q Querier
}

// NewTransporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransporteRepository(q Querier) *TransporteRepo {
	return &TransporteRepo{q: q}
}

// Crear persiste un transportista y asigna su ID.
func (r *TransporteRepo) Crear(t *entity.Transporte) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO transportes (nombre, telefono, cuit) VALUES ($1, $2, $3) RETURNING id`,
		t.Nombre, t.Telefono, t.CUIT,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transporte: %w", err)
	}
	return nil
}

// Listar devuelve todos los transportistas por nombre.
func (r *TransporteRepo) Listar() ([]*entity.Transporte, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, telefono, cuit FROM transportes ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list transportes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transporte
	for rows.Next() {
		var t entity.Transporte
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Telefono, &t.CUIT); err != nil {
			return nil, fmt.Errorf("scan transporte: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Eliminar borra un transportista por ID.
func (r *TransporteRepo) Eliminar(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM transportes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transporte: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
