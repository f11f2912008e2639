package lotes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/lotes"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// almacen es el estado compartido de los fakes: lotes, detalles y RMAs.
type almacen struct {
	nextLoteID    int64
	nextDetalleID int64
	lotes         map[int64]*entity.Lote
	detalles      []*entity.LoteDetalle
	rmas          map[int64]*entity.RMA
}

func nuevoAlmacen() *almacen {
	return &almacen{
		nextLoteID:    1,
		nextDetalleID: 1,
		lotes:         make(map[int64]*entity.Lote),
		rmas:          make(map[int64]*entity.RMA),
	}
}

// clonar copia profunda para simular el snapshot previo a una transacción.
func (a *almacen) clonar() *almacen {
	c := &almacen{
		nextLoteID:    a.nextLoteID,
		nextDetalleID: a.nextDetalleID,
		lotes:         make(map[int64]*entity.Lote, len(a.lotes)),
		rmas:          make(map[int64]*entity.RMA, len(a.rmas)),
	}
	for id, l := range a.lotes {
		cp := *l
		c.lotes[id] = &cp
	}
	for id, r := range a.rmas {
		cp := *r
		c.rmas[id] = &cp
	}
	c.detalles = make([]*entity.LoteDetalle, 0, len(a.detalles))
	for _, d := range a.detalles {
		cp := *d
		c.detalles = append(c.detalles, &cp)
	}
	return c
}

func (a *almacen) reemplazarCon(s *almacen) {
	a.nextLoteID = s.nextLoteID
	a.nextDetalleID = s.nextDetalleID
	a.lotes = s.lotes
	a.detalles = s.detalles
	a.rmas = s.rmas
}

// agregarRMA siembra una unidad devuelta en stock.
func (a *almacen) agregarRMA(id int64, modelo string) {
	a.rmas[id] = &entity.RMA{
		ID: id, ClienteID: 1, MarcaID: 1, Modelo: modelo,
		Cantidad: 1, EnStock: true, FechaIngreso: time.Now(),
	}
}

type fakeLoteRepo struct{ a *almacen }

var _ repository.LoteRepository = (*fakeLoteRepo)(nil)

func (f *fakeLoteRepo) Crear(creadoEn time.Time) (int64, error) {
	id := f.a.nextLoteID
	f.a.nextLoteID++
	f.a.lotes[id] = &entity.Lote{ID: id, Estado: entity.LoteEstadoPendiente, CreadoEn: creadoEn}
	return id, nil
}

func (f *fakeLoteRepo) AgregarDetalle(d *entity.LoteDetalle) error {
	d.ID = f.a.nextDetalleID
	f.a.nextDetalleID++
	cp := *d
	f.a.detalles = append(f.a.detalles, &cp)
	return nil
}

func (f *fakeLoteRepo) GetByID(id int64) (*entity.Lote, error) {
	l, ok := f.a.lotes[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLoteRepo) GetForUpdate(id int64) (*entity.Lote, error) {
	return f.GetByID(id)
}

func (f *fakeLoteRepo) Detalles(loteID int64) ([]*entity.LoteDetalle, error) {
	var out []*entity.LoteDetalle
	for _, d := range f.a.detalles {
		if d.LoteID == loteID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLoteRepo) DetalleRMAIDs(loteID int64) ([]int64, error) {
	var out []int64
	for _, d := range f.a.detalles {
		if d.LoteID == loteID {
			out = append(out, d.RMAID)
		}
	}
	return out, nil
}

func (f *fakeLoteRepo) ActualizarEstado(id int64, estado string, confirmadoEn *time.Time) error {
	l, ok := f.a.lotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Estado = estado
	l.ConfirmadoEn = confirmadoEn
	return nil
}

func (f *fakeLoteRepo) EliminarDetalles(loteID int64) (int64, error) {
	var rest []*entity.LoteDetalle
	var n int64
	for _, d := range f.a.detalles {
		if d.LoteID == loteID {
			n++
			continue
		}
		rest = append(rest, d)
	}
	f.a.detalles = rest
	return n, nil
}

func (f *fakeLoteRepo) Eliminar(id int64) (int64, error) {
	if _, ok := f.a.lotes[id]; !ok {
		return 0, nil
	}
	delete(f.a.lotes, id)
	return 1, nil
}

func (f *fakeLoteRepo) Listar(limit int) ([]*entity.LoteResumen, error) {
	var out []*entity.LoteResumen
	for _, l := range f.a.lotes {
		n := 0
		for _, d := range f.a.detalles {
			if d.LoteID == l.ID {
				n++
			}
		}
		out = append(out, &entity.LoteResumen{Lote: *l, TotalDetalles: n})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeRMARepo struct{ a *almacen }

var _ repository.RMARepository = (*fakeRMARepo)(nil)

func (f *fakeRMARepo) Crear(r *entity.RMA) error   { f.a.rmas[r.ID] = r; return nil }
func (f *fakeRMARepo) Eliminar(id int64) error     { delete(f.a.rmas, id); return nil }
func (f *fakeRMARepo) GetByID(id int64) (*entity.RMA, error) {
	r, ok := f.a.rmas[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRMARepo) Listar(limit, offset int, soloEnStock bool) ([]*entity.RMA, error) {
	var out []*entity.RMA
	for _, r := range f.a.rmas {
		if soloEnStock && !r.EnStock {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRMARepo) MarcarEnStock(ids []int64, enStock bool) (int64, error) {
	var n int64
	for _, id := range ids {
		if r, ok := f.a.rmas[id]; ok {
			r.EnStock = enStock
			n++
		}
	}
	return n, nil
}

// fakeTxRunner simula la semántica transaccional: trabaja sobre un
// clon del estado y solo lo publica si fn termina sin error.
type fakeTxRunner struct{ a *almacen }

var _ lotes.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.LoteRepository, repository.RMARepository) error) error {
	snapshot := f.a.clonar()
	if err := fn(&fakeLoteRepo{a: snapshot}, &fakeRMARepo{a: snapshot}); err != nil {
		return err // rollback: el estado original queda intacto
	}
	f.a.reemplazarCon(snapshot)
	return nil
}

func nuevoUseCase(a *almacen) *lotes.UseCase {
	return lotes.NewUseCase(&fakeTxRunner{a: a}, &fakeLoteRepo{a: a})
}

func itemsDePrueba() []dto.ItemLoteRequest {
	return []dto.ItemLoteRequest{
		{RMAID: 10, Modelo: "TV-55", Cantidad: 1, OP: "OP-001"},
		{RMAID: 20, Modelo: "TV-43", Cantidad: 2},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearLote_CreaPendienteConDetalles(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, err := uc.CrearLote(context.Background(), itemsDePrueba())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	lote := a.lotes[id]
	require.NotNil(t, lote)
	assert.Equal(t, entity.LoteEstadoPendiente, lote.Estado)
	assert.Nil(t, lote.ConfirmadoEn)
	assert.Len(t, a.detalles, 2)

	// La creación no toca en_stock.
	assert.True(t, a.rmas[10].EnStock)
	assert.True(t, a.rmas[20].EnStock)
}

func TestCrearLote_SinItems_EsInvalido(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())
	_, err := uc.CrearLote(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearLote_ItemInvalido_EsRechazado(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())
	casos := [][]dto.ItemLoteRequest{
		{{RMAID: 0, Modelo: "X", Cantidad: 1}},
		{{RMAID: 1, Modelo: "", Cantidad: 1}},
		{{RMAID: 1, Modelo: "X", Cantidad: 0}},
	}
	for _, items := range casos {
		_, err := uc.CrearLote(context.Background(), items)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmar / Revertir
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmarLote_DescuentaRMAYConfirma(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, err := uc.CrearLote(context.Background(), itemsDePrueba())
	require.NoError(t, err)

	n, err := uc.ConfirmarLote(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	lote := a.lotes[id]
	assert.Equal(t, entity.LoteEstadoConfirmado, lote.Estado)
	require.NotNil(t, lote.ConfirmadoEn)
	assert.False(t, a.rmas[10].EnStock)
	assert.False(t, a.rmas[20].EnStock)
}

func TestConfirmarLote_YaConfirmado_FallaPorEstado(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())
	_, err := uc.ConfirmarLote(context.Background(), id)
	require.NoError(t, err)

	_, err = uc.ConfirmarLote(context.Background(), id)
	require.Error(t, err)
	assert.True(t, domain.EsErrorDeEstado(err))

	var estadoErr *domain.EstadoLoteError
	require.ErrorAs(t, err, &estadoErr)
	assert.Equal(t, entity.LoteEstadoConfirmado, estadoErr.Estado)
}

func TestConfirmarLote_Inexistente_NotFound(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())
	_, err := uc.ConfirmarLote(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfirmarLote_SinDetalles_EsErrorDeEstado(t *testing.T) {
	a := nuevoAlmacen()
	// Lote sembrado sin líneas (estado posible solo por datos legacy).
	a.lotes[7] = &entity.Lote{ID: 7, Estado: entity.LoteEstadoPendiente, CreadoEn: time.Now()}
	uc := nuevoUseCase(a)

	_, err := uc.ConfirmarLote(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrLoteVacio)
	assert.True(t, domain.EsErrorDeEstado(err))
	// El estado no cambió: la transacción se revirtió completa.
	assert.Equal(t, entity.LoteEstadoPendiente, a.lotes[7].Estado)
}

func TestRevertirLote_RestauraEnStock(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())
	_, err := uc.ConfirmarLote(context.Background(), id)
	require.NoError(t, err)

	n, err := uc.RevertirLote(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	lote := a.lotes[id]
	assert.Equal(t, entity.LoteEstadoPendiente, lote.Estado)
	assert.Nil(t, lote.ConfirmadoEn)
	assert.True(t, a.rmas[10].EnStock)
	assert.True(t, a.rmas[20].EnStock)
}

func TestRevertirLote_Pendiente_FallaPorEstado(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())
	_, err := uc.RevertirLote(context.Background(), id)
	require.Error(t, err)
	assert.True(t, domain.EsErrorDeEstado(err))
}

func TestConfirmarRevertir_IdaYVuelta_DejaTodoComoAntes(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())
	for i := 0; i < 3; i++ {
		_, err := uc.ConfirmarLote(context.Background(), id)
		require.NoError(t, err)
		_, err = uc.RevertirLote(context.Background(), id)
		require.NoError(t, err)
	}
	assert.True(t, a.rmas[10].EnStock)
	assert.True(t, a.rmas[20].EnStock)
	assert.Equal(t, entity.LoteEstadoPendiente, a.lotes[id].Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarLote_BorraLoteYDetalles(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())
	require.NoError(t, uc.EliminarLote(context.Background(), id))

	assert.NotContains(t, a.lotes, id)
	assert.Empty(t, a.detalles)
}

// Eliminar un lote confirmado NO restaura en_stock: el stock descargado
// se considera consumido.
func TestEliminarLote_Confirmado_NoRestauraEnStock(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())
	_, err := uc.ConfirmarLote(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, uc.EliminarLote(context.Background(), id))

	assert.False(t, a.rmas[10].EnStock)
	assert.False(t, a.rmas[20].EnStock)
}

func TestEliminarLote_Inexistente_NotFoundYRollback(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())

	err := uc.EliminarLote(context.Background(), id+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	// Las líneas del lote existente siguen intactas tras el rollback.
	assert.Len(t, a.detalles, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar / Detalle
// ──────────────────────────────────────────────────────────────────────────────

func TestListarLotes_IncluyeTotalDeDetalles(t *testing.T) {
	a := nuevoAlmacen()
	a.agregarRMA(10, "TV-55")
	a.agregarRMA(20, "TV-43")
	uc := nuevoUseCase(a)

	id, _ := uc.CrearLote(context.Background(), itemsDePrueba())

	out, err := uc.ListarLotes(0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, id, out[0].ID)
	assert.Equal(t, 2, out[0].Detalles)
}

func TestDetalleLote_Inexistente_NotFound(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())
	_, _, err := uc.DetalleLote(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
