package op

import (
	"context"

	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// repositorio de OP atado a esa tx (alta de OP con líneas y recepción
// por batch).
type TxRunner interface {
	RunOP(ctx context.Context, fn func(opRepo repository.OPRepository) error) error
}
