package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/infrastructure/pdf"
)

func TestGenerar_ProduceUnPDF(t *testing.T) {
	confirmado := time.Date(2026, 8, 21, 14, 0, 0, 0, time.UTC)
	lote := &entity.Lote{
		ID:           12,
		Estado:       entity.LoteEstadoConfirmado,
		CreadoEn:     time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		ConfirmadoEn: &confirmado,
	}
	detalles := []entity.LoteDetalle{
		{ID: 1, LoteID: 12, RMAID: 100, Modelo: "TV-55", Cantidad: 2, OP: "OP-33"},
		{ID: 2, LoteID: 12, RMAID: 101, Modelo: "NB-14", Cantidad: 1},
	}

	doc, err := pdf.NewManifiestoGenerator().Generar(lote, detalles)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "el resultado debe ser un PDF válido")
}

func TestGenerar_LotePendienteSinDetalles(t *testing.T) {
	lote := &entity.Lote{ID: 1, Estado: entity.LoteEstadoPendiente, CreadoEn: time.Now()}

	doc, err := pdf.NewManifiestoGenerator().Generar(lote, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
