package repository

import "github.com/almacenpro/rma-backend/internal/domain/entity"

// ConteoFisico es una entrada del conteo físico por producto.
// Stock nil significa "guardar NULL" (sin conteo para este ciclo).
type ConteoFisico struct {
	ProductoID int64
	Stock      *int
}

// ProductoRepository define el puerto de persistencia de productos,
// incluyendo las actualizaciones masivas del motor de reconciliación.
type ProductoRepository interface {
	Crear(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	GetByModelo(modelo string) (*entity.Producto, error)
	Listar(limit, offset int) ([]*entity.Producto, error)
	Eliminar(id int64) error

	// GuardarConteoFisico aplica todas las entradas en un único UPDATE
	// (CASE por id) y sella fecha_conteo. Devuelve filas afectadas.
	GuardarConteoFisico(conteos []ConteoFisico) (int64, error)
	// ActualizarStockSistema fija la cantidad de un origen para un modelo.
	// Devuelve filas afectadas (0 si el modelo no existe).
	ActualizarStockSistema(origen entity.Origen, modelo string, cantidad int) (int64, error)
	// ReiniciarStockSistema pone en 0 la columna del origen para TODOS
	// los productos y sella fecha_conteo. Devuelve filas afectadas.
	ReiniciarStockSistema(origen entity.Origen) (int64, error)
	// ReagruparConteo asigna el grupo de conteo a todos los ids dados.
	ReagruparConteo(grupo int, ids []int64) (int64, error)
	// FijarUnidadesBulto actualiza unidades_bulto de un producto.
	FijarUnidadesBulto(id int64, cantidad int) (int64, error)
}
