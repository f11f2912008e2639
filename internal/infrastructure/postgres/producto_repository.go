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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, modelo, descripcion, marca_id, precio, stock_erp, stock_full, stock_fisico, fecha_conteo, grupo_conteo, unidades_bulto, creado_en`

// columnaOrigen mapea el origen a su columna. Whitelist cerrada: el
// nombre de columna jamás sale del request.
func columnaOrigen(origen entity.Origen) (string, error) {
	switch origen {
	case entity.OrigenERP:
		return "stock_erp", nil
	case entity.OrigenFull:
		return "stock_full", nil
	}
	return "", domain.ErrInvalidInput
}

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Crear persiste un producto nuevo y asigna su ID.
func (r *ProductoRepo) Crear(p *entity.Producto) error {
	query := `
		INSERT INTO productos (modelo, descripcion, marca_id, precio, unidades_bulto, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Modelo, p.Descripcion, p.MarcaID, p.Precio, p.UnidadesBulto, p.CreadoEn,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByModelo obtiene un producto por su clave de negocio (nil si no existe).
func (r *ProductoRepo) GetByModelo(modelo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE modelo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, modelo))
}

// Listar devuelve productos ordenados por modelo. limit <= 0 devuelve todos.
func (r *ProductoRepo) Listar(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY modelo`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := scanProducto(rows, &p); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Eliminar borra un producto por ID.
func (r *ProductoRepo) Eliminar(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GuardarConteoFisico aplica el conteo físico en un único UPDATE con
// CASE por id, restringido exactamente a los ids del batch. Stock nil
// escribe NULL (política cero-colapsa-a-NULL resuelta por el caso de uso).
func (r *ProductoRepo) GuardarConteoFisico(conteos []repository.ConteoFisico) (int64, error) {
	if len(conteos) == 0 {
		return 0, nil
	}
	var sb strings.Builder
	sb.WriteString("UPDATE productos SET stock_fisico = CASE id")
	args := make([]any, 0, len(conteos)*2)
	idPlaceholders := make([]string, 0, len(conteos))
	pos := 1
	for _, c := range conteos {
		fmt.Fprintf(&sb, " WHEN $%d::bigint THEN $%d::int", pos, pos+1)
		args = append(args, c.ProductoID, c.Stock)
		idPlaceholders = append(idPlaceholders, fmt.Sprintf("$%d", pos))
		pos += 2
	}
	fmt.Fprintf(&sb, " END, fecha_conteo = now() WHERE id IN (%s)", strings.Join(idPlaceholders, ", "))

	cmd, err := r.q.Exec(context.Background(), sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("guardar conteo físico: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ActualizarStockSistema fija la cantidad del origen para un modelo y
// sella fecha_conteo. Devuelve filas afectadas (0 = modelo inexistente).
func (r *ProductoRepo) ActualizarStockSistema(origen entity.Origen, modelo string, cantidad int) (int64, error) {
	col, err := columnaOrigen(origen)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`UPDATE productos SET %s = $1, fecha_conteo = now() WHERE modelo = $2`, col)
	cmd, err := r.q.Exec(context.Background(), query, cantidad, modelo)
	if err != nil {
		return 0, fmt.Errorf("actualizar stock %s: %w", origen, err)
	}
	return cmd.RowsAffected(), nil
}

// ReiniciarStockSistema pone en 0 la columna del origen para todos los
// productos, sin filtro.
func (r *ProductoRepo) ReiniciarStockSistema(origen entity.Origen) (int64, error) {
	col, err := columnaOrigen(origen)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`UPDATE productos SET %s = 0, fecha_conteo = now()`, col)
	cmd, err := r.q.Exec(context.Background(), query)
	if err != nil {
		return 0, fmt.Errorf("reiniciar stock %s: %w", origen, err)
	}
	return cmd.RowsAffected(), nil
}

// ReagruparConteo asigna el grupo de conteo a todos los ids en un único UPDATE.
func (r *ProductoRepo) ReagruparConteo(grupo int, ids []int64) (int64, error) {
	query := `UPDATE productos SET grupo_conteo = $1 WHERE id = ANY($2)`
	cmd, err := r.q.Exec(context.Background(), query, grupo, ids)
	if err != nil {
		return 0, fmt.Errorf("reagrupar conteo: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// FijarUnidadesBulto actualiza unidades_bulto. Devuelve filas afectadas.
func (r *ProductoRepo) FijarUnidadesBulto(id int64, cantidad int) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET unidades_bulto = $2 WHERE id = $1`, id, cantidad)
	if err != nil {
		return 0, fmt.Errorf("fijar unidades bulto: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	if err := scanProducto(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func scanProducto(row pgx.Row, p *entity.Producto) error {
	return row.Scan(
		&p.ID, &p.Modelo, &p.Descripcion, &p.MarcaID, &p.Precio,
		&p.StockERP, &p.StockFull, &p.StockFisico, &p.FechaConteo,
		&p.GrupoConteo, &p.UnidadesBulto, &p.CreadoEn,
	)
}
