package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación de LoteRepository sobre PostgreSQL (usable con
// pool o tx). Las transiciones de estado deben correr dentro de una tx
// del TxRunner; GetForUpdate falla fuera de una transacción.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Crear inserta un lote pendiente y devuelve su ID.
func (r *LoteRepo) Crear(creadoEn time.Time) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO rma_lotes_descarga (estado, creado_en) VALUES ($1, $2) RETURNING id`,
		entity.LoteEstadoPendiente, creadoEn,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert lote: %w", err)
	}
	return id, nil
}

// AgregarDetalle inserta una línea del lote y asigna su ID.
func (r *LoteRepo) AgregarDetalle(d *entity.LoteDetalle) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO rma_lotes_detalle (lote_id, rma_id, modelo, cantidad, op)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		d.LoteID, d.RMAID, d.Modelo, d.Cantidad, d.OP,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert lote detalle: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID (nil si no existe).
func (r *LoteRepo) GetByID(id int64) (*entity.Lote, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el lote bloqueando la fila (SELECT FOR UPDATE).
// Dos transiciones concurrentes sobre el mismo lote se serializan acá:
// la segunda espera el commit de la primera y lee el estado ya aplicado.
func (r *LoteRepo) GetForUpdate(id int64) (*entity.Lote, error) {
	return r.get(id, true)
}

func (r *LoteRepo) get(id int64, forUpdate bool) (*entity.Lote, error) {
	query := `SELECT id, estado, creado_en, confirmado_en FROM rma_lotes_descarga WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Estado, &l.CreadoEn, &l.ConfirmadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// Detalles devuelve las líneas del lote.
func (r *LoteRepo) Detalles(loteID int64) ([]*entity.LoteDetalle, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, lote_id, rma_id, modelo, cantidad, op
		 FROM rma_lotes_detalle WHERE lote_id = $1 ORDER BY id`, loteID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	var list []*entity.LoteDetalle
	for rows.Next() {
		var d entity.LoteDetalle
		if err := rows.Scan(&d.ID, &d.LoteID, &d.RMAID, &d.Modelo, &d.Cantidad, &d.OP); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DetalleRMAIDs devuelve los ids de RMA referidos por el lote.
func (r *LoteRepo) DetalleRMAIDs(loteID int64) ([]int64, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT rma_id FROM rma_lotes_detalle WHERE lote_id = $1`, loteID)
	if err != nil {
		return nil, fmt.Errorf("list rma ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan rma id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ActualizarEstado fija estado y confirmado_en (nil lo limpia).
func (r *LoteRepo) ActualizarEstado(id int64, estado string, confirmadoEn *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE rma_lotes_descarga SET estado = $2, confirmado_en = $3 WHERE id = $1`,
		id, estado, confirmadoEn)
	if err != nil {
		return fmt.Errorf("actualizar estado lote: %w", err)
	}
	return nil
}

// EliminarDetalles borra las líneas del lote y devuelve filas afectadas.
func (r *LoteRepo) EliminarDetalles(loteID int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM rma_lotes_detalle WHERE lote_id = $1`, loteID)
	if err != nil {
		return 0, fmt.Errorf("delete detalles: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Eliminar borra el lote y devuelve filas afectadas (0 = inexistente).
func (r *LoteRepo) Eliminar(id int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM rma_lotes_descarga WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete lote: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Listar devuelve los lotes más recientes con el total de líneas de cada uno.
func (r *LoteRepo) Listar(limit int) ([]*entity.LoteResumen, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT l.id, l.estado, l.creado_en, l.confirmado_en, count(d.id)
		 FROM rma_lotes_descarga l
		 LEFT JOIN rma_lotes_detalle d ON d.lote_id = l.id
		 GROUP BY l.id
		 ORDER BY l.creado_en DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.LoteResumen
	for rows.Next() {
		var l entity.LoteResumen
		if err := rows.Scan(&l.ID, &l.Estado, &l.CreadoEn, &l.ConfirmadoEn, &l.TotalDetalles); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
