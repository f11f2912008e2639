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

var _ repository.RMARepository = (*RMARepo)(nil)

const rmaColumns = `id_rma, cliente_id, marca_id, modelo, op_lote, motivo, cantidad, en_stock, fecha_ingreso`

// RMARepo implementación de RMARepository sobre PostgreSQL (usable con pool o tx).
type RMARepo struct {
	q Querier
}

// NewRMARepository construye el adaptador. Pasar pool o tx (Querier).
func NewRMARepository(q Querier) *RMARepo {
	return &RMARepo{q: q}
}

// Crear persiste un RMA nuevo y asigna su ID.
func (r *RMARepo) Crear(rma *entity.RMA) error {
	query := `
		INSERT INTO rma (cliente_id, marca_id, modelo, op_lote, motivo, cantidad, en_stock, fecha_ingreso)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_rma`
	err := r.q.QueryRow(context.Background(), query,
		rma.ClienteID, rma.MarcaID, rma.Modelo, rma.OPLote, rma.Motivo,
		rma.Cantidad, rma.EnStock, rma.FechaIngreso,
	).Scan(&rma.ID)
	if err != nil {
		return fmt.Errorf("insert rma: %w", err)
	}
	return nil
}

// GetByID obtiene un RMA por ID (nil si no existe).
func (r *RMARepo) GetByID(id int64) (*entity.RMA, error) {
	query := `SELECT ` + rmaColumns + ` FROM rma WHERE id_rma = $1`
	var m entity.RMA
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ClienteID, &m.MarcaID, &m.Modelo, &m.OPLote,
		&m.Motivo, &m.Cantidad, &m.EnStock, &m.FechaIngreso,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rma: %w", err)
	}
	return &m, nil
}

// Listar devuelve RMAs por fecha de ingreso descendente. soloEnStock
// filtra las unidades disponibles para lotes.
func (r *RMARepo) Listar(limit, offset int, soloEnStock bool) ([]*entity.RMA, error) {
	query := `SELECT ` + rmaColumns + ` FROM rma`
	if soloEnStock {
		query += ` WHERE en_stock`
	}
	query += ` ORDER BY fecha_ingreso DESC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rma: %w", err)
	}
	defer rows.Close()

	var list []*entity.RMA
	for rows.Next() {
		var m entity.RMA
		if err := rows.Scan(&m.ID, &m.ClienteID, &m.MarcaID, &m.Modelo, &m.OPLote,
			&m.Motivo, &m.Cantidad, &m.EnStock, &m.FechaIngreso); err != nil {
			return nil, fmt.Errorf("scan rma: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Eliminar borra un RMA por ID.
func (r *RMARepo) Eliminar(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM rma WHERE id_rma = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rma: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarcarEnStock fija en_stock para todos los ids en un único UPDATE
// batcheado y devuelve los registros actualizados.
func (r *RMARepo) MarcarEnStock(ids []int64, enStock bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE rma SET en_stock = $1 WHERE id_rma = ANY($2)`, enStock, ids)
	if err != nil {
		return 0, fmt.Errorf("marcar en_stock: %w", err)
	}
	return cmd.RowsAffected(), nil
}
