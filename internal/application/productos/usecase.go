package productos

import (
	"time"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// UseCase casos de uso CRUD de productos. Las cantidades (stock por
// origen, conteo físico) las maneja el motor de inventario, no este CRUD.
type UseCase struct {
	repo repository.ProductoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Crear registra un producto nuevo. El modelo es único.
func (uc *UseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Modelo == "" || in.UnidadesBulto < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByModelo(in.Modelo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Producto{
		Modelo:        in.Modelo,
		Descripcion:   in.Descripcion,
		MarcaID:       in.MarcaID,
		Precio:        in.Precio,
		UnidadesBulto: in.UnidadesBulto,
		CreadoEn:      time.Now(),
	}
	if err := uc.repo.Crear(p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Listar devuelve productos paginados.
func (uc *UseCase) Listar(page dto.PageRequest) ([]dto.ProductoResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.Listar(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *UseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(p), nil
}

// Eliminar borra un producto.
func (uc *UseCase) Eliminar(id int64) error {
	return uc.repo.Eliminar(id)
}

// Todos devuelve el catálogo completo (para la exportación a Excel).
func (uc *UseCase) Todos() ([]*entity.Producto, error) {
	return uc.repo.Listar(0, 0)
}

func toResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:            p.ID,
		Modelo:        p.Modelo,
		Descripcion:   p.Descripcion,
		MarcaID:       p.MarcaID,
		Precio:        p.Precio,
		StockERP:      p.StockERP,
		StockFull:     p.StockFull,
		StockFisico:   p.StockFisico,
		FechaConteo:   p.FechaConteo,
		GrupoConteo:   p.GrupoConteo,
		UnidadesBulto: p.UnidadesBulto,
	}
}
