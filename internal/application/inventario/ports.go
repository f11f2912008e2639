package inventario

import (
	"context"

	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// repositorio de productos atado a esa tx. Se usa para las
// actualizaciones por origen, que emiten un UPDATE por modelo y deben
// aplicarse o descartarse como unidad.
type TxRunner interface {
	RunInventario(ctx context.Context, fn func(productoRepo repository.ProductoRepository) error) error
}
