package lotes

import (
	"context"
	"time"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// UseCase implementa el ciclo de vida de lotes de descarga:
// crear (pendiente) → confirmar (descuenta RMA de stock) → revertir
// (restaura) → eliminar. Confirmar y revertir son transaccionales: el
// cambio de en_stock y el cambio de estado del lote se aplican o se
// descartan juntos.
type UseCase struct {
	txRunner TxRunner
	loteRepo repository.LoteRepository
}

// NewUseCase construye el caso de uso. loteRepo va atado al pool y solo
// se usa para lecturas; las mutaciones pasan por txRunner.
func NewUseCase(txRunner TxRunner, loteRepo repository.LoteRepository) *UseCase {
	return &UseCase{txRunner: txRunner, loteRepo: loteRepo}
}

// CrearLote crea un lote pendiente con una línea por item. No toca
// en_stock: la creación solo deja el lote preparado.
func (uc *UseCase) CrearLote(ctx context.Context, items []dto.ItemLoteRequest) (int64, error) {
	if len(items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, it := range items {
		if it.RMAID <= 0 || it.Modelo == "" || it.Cantidad <= 0 {
			return 0, domain.ErrInvalidInput
		}
	}

	var loteID int64
	err := uc.txRunner.Run(ctx, func(loteRepo repository.LoteRepository, _ repository.RMARepository) error {
		id, err := loteRepo.Crear(time.Now())
		if err != nil {
			return err
		}
		for _, it := range items {
			d := &entity.LoteDetalle{
				LoteID:   id,
				RMAID:    it.RMAID,
				Modelo:   it.Modelo,
				Cantidad: it.Cantidad,
				OP:       it.OP,
			}
			if err := loteRepo.AgregarDetalle(d); err != nil {
				return err
			}
		}
		loteID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return loteID, nil
}

// ConfirmarLote transiciona pendiente → confirmado y marca en_stock=false
// en todos los RMA referidos por el lote, en una sola transacción.
// La lectura del estado bloquea la fila (SELECT FOR UPDATE): de dos
// confirmaciones concurrentes solo una gana; la otra ve el estado ya
// confirmado y falla con EstadoLoteError.
func (uc *UseCase) ConfirmarLote(ctx context.Context, loteID int64) (int64, error) {
	var actualizados int64
	err := uc.txRunner.Run(ctx, func(loteRepo repository.LoteRepository, rmaRepo repository.RMARepository) error {
		lote, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if lote.Estado != entity.LoteEstadoPendiente {
			return &domain.EstadoLoteError{Estado: lote.Estado}
		}
		rmaIDs, err := loteRepo.DetalleRMAIDs(loteID)
		if err != nil {
			return err
		}
		if len(rmaIDs) == 0 {
			return domain.ErrLoteVacio
		}
		n, err := rmaRepo.MarcarEnStock(rmaIDs, false)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := loteRepo.ActualizarEstado(loteID, entity.LoteEstadoConfirmado, &now); err != nil {
			return err
		}
		actualizados = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return actualizados, nil
}

// RevertirLote transiciona confirmado → pendiente restaurando
// en_stock=true en los RMA del lote. Misma atomicidad y bloqueo de fila
// que ConfirmarLote.
func (uc *UseCase) RevertirLote(ctx context.Context, loteID int64) (int64, error) {
	var actualizados int64
	err := uc.txRunner.Run(ctx, func(loteRepo repository.LoteRepository, rmaRepo repository.RMARepository) error {
		lote, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if lote.Estado != entity.LoteEstadoConfirmado {
			return &domain.EstadoLoteError{Estado: lote.Estado}
		}
		rmaIDs, err := loteRepo.DetalleRMAIDs(loteID)
		if err != nil {
			return err
		}
		n, err := rmaRepo.MarcarEnStock(rmaIDs, true)
		if err != nil {
			return err
		}
		if err := loteRepo.ActualizarEstado(loteID, entity.LoteEstadoPendiente, nil); err != nil {
			return err
		}
		actualizados = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return actualizados, nil
}

// EliminarLote borra las líneas del lote y luego el lote. Si el lote no
// existe, la transacción completa se revierte (incluido el borrado de
// líneas, que habría sido un no-op) y se devuelve ErrNotFound.
//
// Eliminar un lote confirmado NO restaura en_stock de sus RMA: el stock
// confirmado y descargado se considera consumido (comportamiento
// heredado, mantenido a propósito).
func (uc *UseCase) EliminarLote(ctx context.Context, loteID int64) error {
	return uc.txRunner.Run(ctx, func(loteRepo repository.LoteRepository, _ repository.RMARepository) error {
		if _, err := loteRepo.EliminarDetalles(loteID); err != nil {
			return err
		}
		n, err := loteRepo.Eliminar(loteID)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// ListarLotes devuelve los lotes más recientes (máximo 50) con su total
// de líneas. Solo lectura, sin transacción.
func (uc *UseCase) ListarLotes(limit int) ([]dto.LoteResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	resumenes, err := uc.loteRepo.Listar(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoteResponse, 0, len(resumenes))
	for _, r := range resumenes {
		out = append(out, dto.LoteResponse{
			ID:           r.ID,
			Estado:       r.Estado,
			CreadoEn:     r.CreadoEn,
			ConfirmadoEn: r.ConfirmadoEn,
			Detalles:     r.TotalDetalles,
		})
	}
	return out, nil
}

// DetalleLote devuelve el lote con sus líneas (para la vista de detalle
// y el manifiesto PDF).
func (uc *UseCase) DetalleLote(loteID int64) (*entity.Lote, []*entity.LoteDetalle, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, nil, err
	}
	if lote == nil {
		return nil, nil, domain.ErrNotFound
	}
	detalles, err := uc.loteRepo.Detalles(loteID)
	if err != nil {
		return nil, nil, err
	}
	return lote, detalles, nil
}
