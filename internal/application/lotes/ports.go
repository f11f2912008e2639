package lotes

import (
	"context"

	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada operación de la API abre exactamente
// una transacción; no hay anidamiento. Garantiza Commit/Rollback y la
// devolución de la conexión al pool en todos los caminos de salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		loteRepo repository.LoteRepository,
		rmaRepo repository.RMARepository,
	) error) error
}
