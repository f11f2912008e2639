package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

var _ repository.OPRepository = (*OPRepo)(nil)

// OPRepo implementación de OPRepository sobre PostgreSQL (usable con pool o tx).
type OPRepo struct {
	q Querier
}

// NewOPRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOPRepository(q Querier) *OPRepo {
	return &OPRepo{q: q}
}

// Crear persiste la OP y asigna su ID.
func (r *OPRepo) Crear(op *entity.OrdenProduccion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO ordenes_produccion (numero, estado, creado_en)
		 VALUES ($1, $2, $3) RETURNING id`,
		op.Numero, op.Estado, op.CreadoEn,
	).Scan(&op.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert op: %w", err)
	}
	return nil
}

// AgregarDetalle inserta una línea de la OP y asigna su ID.
func (r *OPRepo) AgregarDetalle(d *entity.OPDetalle) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO op_detalle (op_id, modelo, cantidad, recibido)
		 VALUES ($1, $2, $3, 0) RETURNING id`,
		d.OPID, d.Modelo, d.Cantidad,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert op detalle: %w", err)
	}
	return nil
}

// GetByID obtiene una OP por ID (nil si no existe).
func (r *OPRepo) GetByID(id int64) (*entity.OrdenProduccion, error) {
	var o entity.OrdenProduccion
	err := r.q.QueryRow(context.Background(),
		`SELECT id, numero, estado, creado_en FROM ordenes_produccion WHERE id = $1`, id,
	).Scan(&o.ID, &o.Numero, &o.Estado, &o.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get op: %w", err)
	}
	return &o, nil
}

// Listar devuelve OPs por fecha de creación descendente.
func (r *OPRepo) Listar(limit, offset int) ([]*entity.OrdenProduccion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, numero, estado, creado_en
		 FROM ordenes_produccion ORDER BY creado_en DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list op: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrdenProduccion
	for rows.Next() {
		var o entity.OrdenProduccion
		if err := rows.Scan(&o.ID, &o.Numero, &o.Estado, &o.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan op: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Detalles devuelve las líneas de la OP.
func (r *OPRepo) Detalles(opID int64) ([]*entity.OPDetalle, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, op_id, modelo, cantidad, recibido
		 FROM op_detalle WHERE op_id = $1 ORDER BY id`, opID)
	if err != nil {
		return nil, fmt.Errorf("list op detalles: %w", err)
	}
	defer rows.Close()

	var list []*entity.OPDetalle
	for rows.Next() {
		var d entity.OPDetalle
		if err := rows.Scan(&d.ID, &d.OPID, &d.Modelo, &d.Cantidad, &d.Recibido); err != nil {
			return nil, fmt.Errorf("scan op detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ActualizarRecibidos aplica el batch de recepción en un único UPDATE
// con CASE por id de detalle, restringido a las líneas de la OP dada.
func (r *OPRepo) ActualizarRecibidos(opID int64, recepciones []repository.RecepcionOP) (int64, error) {
	if len(recepciones) == 0 {
		return 0, nil
	}
	var sb strings.Builder
	sb.WriteString("UPDATE op_detalle SET recibido = CASE id")
	args := []any{opID}
	idPlaceholders := make([]string, 0, len(recepciones))
	pos := 2
	for _, rec := range recepciones {
		fmt.Fprintf(&sb, " WHEN $%d::bigint THEN $%d::int", pos, pos+1)
		args = append(args, rec.DetalleID, rec.Recibido)
		idPlaceholders = append(idPlaceholders, fmt.Sprintf("$%d", pos))
		pos += 2
	}
	fmt.Fprintf(&sb, " END WHERE op_id = $1 AND id IN (%s)", strings.Join(idPlaceholders, ", "))

	cmd, err := r.q.Exec(context.Background(), sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("actualizar recibidos: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ActualizarEstado fija el estado de la OP. Devuelve filas afectadas.
func (r *OPRepo) ActualizarEstado(id int64, estado string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ordenes_produccion SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return 0, fmt.Errorf("actualizar estado op: %w", err)
	}
	return cmd.RowsAffected(), nil
}
