package sync

import (
	"context"
	"time"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
	"github.com/almacenpro/rma-backend/pkg/logger"
)

// UseCase sincroniza órdenes del marketplace: trae las órdenes creadas
// después de la última sincronizada, las enriquece con el estado del
// envío y las upserta localmente. Sin reintentos: una corrida fallida
// se relanza completa desde el handler.
type UseCase struct {
	client MarketplaceClient
	repo   repository.OrdenMeliRepository
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(client MarketplaceClient, repo repository.OrdenMeliRepository, log *logger.Logger) *UseCase {
	return &UseCase{client: client, repo: repo, log: log}
}

// Sincronizar ejecuta una corrida de sincronización y devuelve cuántas
// órdenes se upsertaron. El enriquecimiento de envío es best-effort: si
// falla para una orden se registra y la orden se guarda sin ese dato.
func (uc *UseCase) Sincronizar(ctx context.Context) (*dto.SincronizarOrdenesResponse, error) {
	desde, err := uc.repo.UltimaFechaCreada()
	if err != nil {
		return nil, err
	}
	ordenes, err := uc.client.OrdenesRecientes(ctx, desde)
	if err != nil {
		return nil, err
	}

	sincronizadas := 0
	for _, o := range ordenes {
		estadoEnvio := ""
		if o.EnvioID != nil {
			estadoEnvio, err = uc.client.EstadoEnvio(ctx, *o.EnvioID)
			if err != nil {
				uc.log.Warn().Err(err).Int64("orden", o.ID).Msg("no se pudo obtener el estado del envío")
				estadoEnvio = ""
			}
		}
		orden := &entity.OrdenMeli{
			ID:             o.ID,
			Estado:         o.Estado,
			Comprador:      o.Comprador,
			Total:          o.Total,
			EstadoEnvio:    estadoEnvio,
			FechaCreada:    o.FechaCreada,
			SincronizadaEn: time.Now(),
		}
		if err := uc.repo.Upsert(orden); err != nil {
			return nil, err
		}
		sincronizadas++
	}
	return &dto.SincronizarOrdenesResponse{Sincronizadas: sincronizadas, Desde: desde}, nil
}

// Listar devuelve órdenes sincronizadas paginadas.
func (uc *UseCase) Listar(page dto.PageRequest) ([]dto.OrdenMeliResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.Listar(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrdenMeliResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrdenMeliResponse{
			ID:          o.ID,
			Estado:      o.Estado,
			Comprador:   o.Comprador,
			Total:       o.Total,
			EstadoEnvio: o.EstadoEnvio,
			FechaCreada: o.FechaCreada,
		})
	}
	return out, nil
}
