package inventario

import (
	"context"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// AccionBorrar es el valor del campo accion que dispara el reinicio
// masivo de la columna de un origen. No hay más guarda que este flag.
const AccionBorrar = "borrar"

// UseCase implementa el motor de reconciliación de inventario: conteo
// físico batcheado, sobrescritura por origen (ERP / Full) y operaciones
// auxiliares de agrupación y bulto.
type UseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
}

// NewUseCase construye el caso de uso. productoRepo va atado al pool;
// las actualizaciones por origen usan txRunner.
func NewUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productoRepo: productoRepo}
}

// GuardarConteoFisico aplica el conteo físico como un único UPDATE con
// CASE por id, restringido exactamente a los ids presentes.
//
// Política heredada, mantenida a propósito: un conteo de cero se guarda
// como NULL, de modo que "contado en cero" y "sin contar" quedan
// indistinguibles. Las entradas sin valor (nil) se descartan antes del
// batch; si no queda ninguna la petición es inválida.
func (uc *UseCase) GuardarConteoFisico(items []dto.ConteoFisicoItem) (int64, error) {
	conteos := make([]repository.ConteoFisico, 0, len(items))
	for _, it := range items {
		if it.StockFisico == nil {
			continue
		}
		if it.ProductoID <= 0 || *it.StockFisico < 0 {
			return 0, domain.ErrInvalidInput
		}
		c := repository.ConteoFisico{ProductoID: it.ProductoID}
		if *it.StockFisico != 0 {
			v := *it.StockFisico
			c.Stock = &v
		}
		conteos = append(conteos, c)
	}
	if len(conteos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.productoRepo.GuardarConteoFisico(conteos)
}

// ActualizarStockSistema sobrescribe la cantidad del origen para cada
// modelo del batch dentro de una transacción. Los modelos que no
// matchean ninguna fila se saltan en silencio: solo se reflejan en un
// total de afectadas menor.
func (uc *UseCase) ActualizarStockSistema(ctx context.Context, origen entity.Origen, items []dto.StockSistemaItem) (int64, error) {
	if !origen.Valido() || len(items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	var total int64
	err := uc.txRunner.RunInventario(ctx, func(repo repository.ProductoRepository) error {
		for _, it := range items {
			if it.Modelo == "" {
				return domain.ErrInvalidInput
			}
			n, err := repo.ActualizarStockSistema(origen, it.Modelo, it.Cantidad)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ReiniciarStockSistema pone en 0 la columna del origen para todos los
// productos. Operación destructiva sin filtro; el handler solo la
// invoca cuando el request trae accion == "borrar".
func (uc *UseCase) ReiniciarStockSistema(origen entity.Origen) (int64, error) {
	if !origen.Valido() {
		return 0, domain.ErrInvalidInput
	}
	return uc.productoRepo.ReiniciarStockSistema(origen)
}

// ReagruparConteo asigna el grupo de conteo a los productos dados en un
// único UPDATE. Idempotente: reaplicar con los mismos argumentos deja
// el mismo estado.
func (uc *UseCase) ReagruparConteo(grupo int, productoIDs []int64) (int64, error) {
	if grupo <= 0 || len(productoIDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.productoRepo.ReagruparConteo(grupo, productoIDs)
}

// FijarUnidadesBulto actualiza las unidades por bulto de un producto.
func (uc *UseCase) FijarUnidadesBulto(productoID int64, cantidad int) error {
	if productoID <= 0 || cantidad < 0 {
		return domain.ErrInvalidInput
	}
	n, err := uc.productoRepo.FijarUnidadesBulto(productoID, cantidad)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
