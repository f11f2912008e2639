package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

var _ repository.OrdenMeliRepository = (*OrdenMeliRepo)(nil)

// OrdenMeliRepo implementación de OrdenMeliRepository sobre PostgreSQL.
type OrdenMeliRepo struct {
	q Querier
}

// NewOrdenMeliRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenMeliRepository(q Querier) *OrdenMeliRepo {
	return &OrdenMeliRepo{q: q}
}

// Upsert inserta la orden o, si ya existe, actualiza estado, envío y
// fecha de sincronización.
func (r *OrdenMeliRepo) Upsert(o *entity.OrdenMeli) error {
	query := `
		INSERT INTO ordenes_meli (id, estado, comprador, total, estado_envio, fecha_creada, sincronizada_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET estado = EXCLUDED.estado, estado_envio = EXCLUDED.estado_envio,
		              sincronizada_en = EXCLUDED.sincronizada_en`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Estado, o.Comprador, o.Total, o.EstadoEnvio, o.FechaCreada, o.SincronizadaEn)
	if err != nil {
		return fmt.Errorf("upsert orden meli: %w", err)
	}
	return nil
}

// Listar devuelve órdenes por fecha de creación descendente.
func (r *OrdenMeliRepo) Listar(limit, offset int) ([]*entity.OrdenMeli, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, estado, comprador, total, estado_envio, fecha_creada, sincronizada_en
		 FROM ordenes_meli ORDER BY fecha_creada DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes meli: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrdenMeli
	for rows.Next() {
		var o entity.OrdenMeli
		if err := rows.Scan(&o.ID, &o.Estado, &o.Comprador, &o.Total, &o.EstadoEnvio,
			&o.FechaCreada, &o.SincronizadaEn); err != nil {
			return nil, fmt.Errorf("scan orden meli: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UltimaFechaCreada devuelve la fecha de creación más reciente entre las
// órdenes sincronizadas (nil si la tabla está vacía).
func (r *OrdenMeliRepo) UltimaFechaCreada() (*time.Time, error) {
	var t *time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT max(fecha_creada) FROM ordenes_meli`).Scan(&t)
	if err != nil {
		return nil, fmt.Errorf("última fecha creada: %w", err)
	}
	return t, nil
}
