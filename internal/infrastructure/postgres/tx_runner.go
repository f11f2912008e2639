package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almacenpro/rma-backend/internal/application/inventario"
	"github.com/almacenpro/rma-backend/internal/application/lotes"
	"github.com/almacenpro/rma-backend/internal/application/op"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// Verificación en tiempo de compilación de los puertos de transacción.
var (
	_ lotes.TxRunner      = (*TxRunner)(nil)
	_ inventario.TxRunner = (*TxRunner)(nil)
	_ op.TxRunner         = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El defer Rollback garantiza que la conexión vuelve al pool con la
// transacción cerrada en todos los caminos: retorno normal (Rollback
// tras Commit es un no-op), error del callback o cancelación del
// contexto en vuelo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos de lotes y RMA
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	loteRepo repository.LoteRepository,
	rmaRepo repository.RMARepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLoteRepository(tx), NewRMARepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventario inicia una transacción con el repo de productos atado
// a la tx (actualizaciones de stock por origen).
func (r *TxRunner) RunInventario(ctx context.Context, fn func(productoRepo repository.ProductoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOP inicia una transacción con el repo de órdenes de producción.
func (r *TxRunner) RunOP(ctx context.Context, fn func(opRepo repository.OPRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOPRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
