package rma

import (
	"time"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// UseCase casos de uso CRUD de unidades devueltas. El flag en_stock
// solo lo mutan los lotes (confirmar/revertir); acá nace en true.
type UseCase struct {
	repo repository.RMARepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.RMARepository) *UseCase {
	return &UseCase{repo: repo}
}

// Crear registra una unidad devuelta, disponible (en_stock=true).
func (uc *UseCase) Crear(in dto.CrearRMARequest) (*dto.RMAResponse, error) {
	if in.ClienteID <= 0 || in.MarcaID <= 0 || in.Modelo == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	r := &entity.RMA{
		ClienteID:    in.ClienteID,
		MarcaID:      in.MarcaID,
		Modelo:       in.Modelo,
		OPLote:       in.OPLote,
		Motivo:       in.Motivo,
		Cantidad:     in.Cantidad,
		EnStock:      true,
		FechaIngreso: time.Now(),
	}
	if err := uc.repo.Crear(r); err != nil {
		return nil, err
	}
	return toResponse(r), nil
}

// Listar devuelve RMAs paginados; soloEnStock filtra las unidades
// disponibles para armar lotes.
func (uc *UseCase) Listar(page dto.PageRequest, soloEnStock bool) ([]dto.RMAResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.Listar(page.Limit, page.Offset, soloEnStock)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RMAResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toResponse(r))
	}
	return out, nil
}

// GetByID devuelve un RMA o ErrNotFound.
func (uc *UseCase) GetByID(id int64) (*dto.RMAResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(r), nil
}

// Eliminar borra un RMA.
func (uc *UseCase) Eliminar(id int64) error {
	return uc.repo.Eliminar(id)
}

func toResponse(r *entity.RMA) *dto.RMAResponse {
	return &dto.RMAResponse{
		ID:           r.ID,
		ClienteID:    r.ClienteID,
		MarcaID:      r.MarcaID,
		Modelo:       r.Modelo,
		OPLote:       r.OPLote,
		Motivo:       r.Motivo,
		Cantidad:     r.Cantidad,
		EnStock:      r.EnStock,
		FechaIngreso: r.FechaIngreso,
	}
}
