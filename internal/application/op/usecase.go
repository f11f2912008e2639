package op

import (
	"context"
	"time"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// UseCase casos de uso de órdenes de producción: alta con líneas y
// recepción por batch, ambas transaccionales.
type UseCase struct {
	txRunner TxRunner
	opRepo   repository.OPRepository
}

// NewUseCase construye el caso de uso. opRepo va atado al pool y solo
// se usa para lecturas.
func NewUseCase(txRunner TxRunner, opRepo repository.OPRepository) *UseCase {
	return &UseCase{txRunner: txRunner, opRepo: opRepo}
}

// Crear registra la OP y sus líneas en una transacción.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearOPRequest) (int64, error) {
	if in.Numero == "" || len(in.Items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Modelo == "" || it.Cantidad <= 0 {
			return 0, domain.ErrInvalidInput
		}
	}
	var opID int64
	err := uc.txRunner.RunOP(ctx, func(repo repository.OPRepository) error {
		o := &entity.OrdenProduccion{
			Numero:   in.Numero,
			Estado:   entity.OPEstadoAbierta,
			CreadoEn: time.Now(),
		}
		if err := repo.Crear(o); err != nil {
			return err
		}
		for _, it := range in.Items {
			d := &entity.OPDetalle{OPID: o.ID, Modelo: it.Modelo, Cantidad: it.Cantidad}
			if err := repo.AgregarDetalle(d); err != nil {
				return err
			}
		}
		opID = o.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return opID, nil
}

// Recibir aplica el batch de cantidades recibidas de la OP en un único
// UPDATE y, como parte de la misma transacción, marca la OP como
// recibida. Falla con ErrNotFound si la OP no existe.
func (uc *UseCase) Recibir(ctx context.Context, opID int64, in dto.RecibirOPRequest) (int64, error) {
	if opID <= 0 || len(in.Recepciones) == 0 {
		return 0, domain.ErrInvalidInput
	}
	recepciones := make([]repository.RecepcionOP, 0, len(in.Recepciones))
	for _, r := range in.Recepciones {
		if r.DetalleID <= 0 || r.Recibido < 0 {
			return 0, domain.ErrInvalidInput
		}
		recepciones = append(recepciones, repository.RecepcionOP{DetalleID: r.DetalleID, Recibido: r.Recibido})
	}
	var afectadas int64
	err := uc.txRunner.RunOP(ctx, func(repo repository.OPRepository) error {
		o, err := repo.GetByID(opID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		n, err := repo.ActualizarRecibidos(opID, recepciones)
		if err != nil {
			return err
		}
		if _, err := repo.ActualizarEstado(opID, entity.OPEstadoRecibida); err != nil {
			return err
		}
		afectadas = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return afectadas, nil
}

// Listar devuelve OPs paginadas.
func (uc *UseCase) Listar(page dto.PageRequest) ([]dto.OPResponse, error) {
	page.DefaultPage()
	list, err := uc.opRepo.Listar(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OPResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OPResponse{ID: o.ID, Numero: o.Numero, Estado: o.Estado, CreadoEn: o.CreadoEn})
	}
	return out, nil
}

// Detalles devuelve las líneas de una OP o ErrNotFound.
func (uc *UseCase) Detalles(opID int64) ([]dto.OPDetalleResponse, error) {
	o, err := uc.opRepo.GetByID(opID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.opRepo.Detalles(opID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OPDetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, dto.OPDetalleResponse{ID: d.ID, Modelo: d.Modelo, Cantidad: d.Cantidad, Recibido: d.Recibido})
	}
	return out, nil
}
