package inventario_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/inventario"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// fakeProductoRepo registra las llamadas del motor de reconciliación.
type fakeProductoRepo struct {
	repository.ProductoRepository // métodos no usados hacen panic

	conteosRecibidos []repository.ConteoFisico
	stockPorModelo   map[string]int
	origenReiniciado entity.Origen
	grupoAsignado    int
	idsReagrupados   []int64
	bultoFijado      map[int64]int

	filasPorModelo map[string]int64 // filas afectadas a reportar por modelo
}

func nuevoFakeRepo() *fakeProductoRepo {
	return &fakeProductoRepo{
		stockPorModelo: make(map[string]int),
		bultoFijado:    make(map[int64]int),
		filasPorModelo: make(map[string]int64),
	}
}

func (f *fakeProductoRepo) GuardarConteoFisico(conteos []repository.ConteoFisico) (int64, error) {
	f.conteosRecibidos = conteos
	return int64(len(conteos)), nil
}

func (f *fakeProductoRepo) ActualizarStockSistema(origen entity.Origen, modelo string, cantidad int) (int64, error) {
	f.stockPorModelo[modelo] = cantidad
	if n, ok := f.filasPorModelo[modelo]; ok {
		return n, nil
	}
	return 1, nil
}

func (f *fakeProductoRepo) ReiniciarStockSistema(origen entity.Origen) (int64, error) {
	f.origenReiniciado = origen
	return 42, nil
}

func (f *fakeProductoRepo) ReagruparConteo(grupo int, ids []int64) (int64, error) {
	f.grupoAsignado = grupo
	f.idsReagrupados = ids
	return int64(len(ids)), nil
}

func (f *fakeProductoRepo) FijarUnidadesBulto(id int64, cantidad int) (int64, error) {
	if id >= 1000 {
		return 0, nil // producto inexistente
	}
	f.bultoFijado[id] = cantidad
	return 1, nil
}

// fakeInvTxRunner pasa el mismo repo; el rollback se cubre en los tests
// de integración de postgres.
type fakeInvTxRunner struct{ repo repository.ProductoRepository }

var _ inventario.TxRunner = (*fakeInvTxRunner)(nil)

func (f *fakeInvTxRunner) RunInventario(_ context.Context, fn func(repository.ProductoRepository) error) error {
	return fn(f.repo)
}

func nuevoUseCase(repo *fakeProductoRepo) *inventario.UseCase {
	return inventario.NewUseCase(&fakeInvTxRunner{repo: repo}, repo)
}

func ptr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// GuardarConteoFisico
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardarConteo_CeroColapsaANull(t *testing.T) {
	repo := nuevoFakeRepo()
	uc := nuevoUseCase(repo)

	n, err := uc.GuardarConteoFisico([]dto.ConteoFisicoItem{
		{ProductoID: 1, StockFisico: ptr(5)},
		{ProductoID: 2, StockFisico: ptr(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.Len(t, repo.conteosRecibidos, 2)
	require.NotNil(t, repo.conteosRecibidos[0].Stock)
	assert.Equal(t, 5, *repo.conteosRecibidos[0].Stock)
	// Conteo en cero se persiste como NULL (política heredada).
	assert.Nil(t, repo.conteosRecibidos[1].Stock)
}

func TestGuardarConteo_DescartaEntradasSinValor(t *testing.T) {
	repo := nuevoFakeRepo()
	uc := nuevoUseCase(repo)

	n, err := uc.GuardarConteoFisico([]dto.ConteoFisicoItem{
		{ProductoID: 1, StockFisico: nil},
		{ProductoID: 2, StockFisico: ptr(3)},
		{ProductoID: 3, StockFisico: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.Len(t, repo.conteosRecibidos, 1)
	assert.Equal(t, int64(2), repo.conteosRecibidos[0].ProductoID)
}

func TestGuardarConteo_SoloEntradasNil_EsInvalido(t *testing.T) {
	uc := nuevoUseCase(nuevoFakeRepo())
	_, err := uc.GuardarConteoFisico([]dto.ConteoFisicoItem{
		{ProductoID: 1, StockFisico: nil},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGuardarConteo_NegativoOIdInvalido_EsRechazado(t *testing.T) {
	uc := nuevoUseCase(nuevoFakeRepo())

	_, err := uc.GuardarConteoFisico([]dto.ConteoFisicoItem{
		{ProductoID: 1, StockFisico: ptr(-1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GuardarConteoFisico([]dto.ConteoFisicoItem{
		{ProductoID: 0, StockFisico: ptr(1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ActualizarStockSistema / ReiniciarStockSistema
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarStockSistema_SumaFilasAfectadas(t *testing.T) {
	repo := nuevoFakeRepo()
	repo.filasPorModelo["FANTASMA"] = 0 // modelo sin fila: se salta en silencio
	uc := nuevoUseCase(repo)

	n, err := uc.ActualizarStockSistema(context.Background(), entity.OrigenERP, []dto.StockSistemaItem{
		{Modelo: "TV-55", Cantidad: 7},
		{Modelo: "FANTASMA", Cantidad: 3},
		{Modelo: "TV-43", Cantidad: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 7, repo.stockPorModelo["TV-55"])
	assert.Equal(t, 0, repo.stockPorModelo["TV-43"])
}

func TestActualizarStockSistema_OrigenInvalido(t *testing.T) {
	uc := nuevoUseCase(nuevoFakeRepo())
	_, err := uc.ActualizarStockSistema(context.Background(), "sap", []dto.StockSistemaItem{
		{Modelo: "TV-55", Cantidad: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarStockSistema_ModeloVacio(t *testing.T) {
	uc := nuevoUseCase(nuevoFakeRepo())
	_, err := uc.ActualizarStockSistema(context.Background(), entity.OrigenFull, []dto.StockSistemaItem{
		{Modelo: "", Cantidad: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReiniciarStockSistema_DelegaPorOrigen(t *testing.T) {
	repo := nuevoFakeRepo()
	uc := nuevoUseCase(repo)

	n, err := uc.ReiniciarStockSistema(entity.OrigenFull)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, entity.OrigenFull, repo.origenReiniciado)

	_, err = uc.ReiniciarStockSistema("otro")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReagruparConteo / FijarUnidadesBulto
// ──────────────────────────────────────────────────────────────────────────────

func TestReagruparConteo(t *testing.T) {
	repo := nuevoFakeRepo()
	uc := nuevoUseCase(repo)

	n, err := uc.ReagruparConteo(3, []int64{1, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 3, repo.grupoAsignado)
	assert.Equal(t, []int64{1, 2, 5}, repo.idsReagrupados)

	_, err = uc.ReagruparConteo(0, []int64{1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ReagruparConteo(1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFijarUnidadesBulto(t *testing.T) {
	repo := nuevoFakeRepo()
	uc := nuevoUseCase(repo)

	require.NoError(t, uc.FijarUnidadesBulto(5, 12))
	assert.Equal(t, 12, repo.bultoFijado[5])

	// Producto inexistente: el repo reporta 0 filas.
	err := uc.FijarUnidadesBulto(1000, 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.FijarUnidadesBulto(0, 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.FijarUnidadesBulto(1, -1), domain.ErrInvalidInput)
}
