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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Crear persiste un cliente y asigna su ID.
func (r *ClienteRepo) Crear(c *entity.Cliente) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO clientes (nombre, email, telefono, direccion, creado_en)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Nombre, c.Email, c.Telefono, c.Direccion, c.CreadoEn,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID (nil si no existe).
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, email, telefono, direccion, creado_en FROM clientes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion, &c.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Listar devuelve clientes por nombre.
func (r *ClienteRepo) Listar(limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, email, telefono, direccion, creado_en
		 FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion, &c.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Eliminar borra un cliente por ID.
func (r *ClienteRepo) Eliminar(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
