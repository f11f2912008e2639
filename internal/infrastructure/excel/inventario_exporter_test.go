package excel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/infrastructure/excel"
)

func TestExportar_PlanillaLegible(t *testing.T) {
	cinco := 5
	grupo := 2
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	productos := []entity.Producto{
		{
			Modelo: "TV-55", Descripcion: "Smart TV 55", StockERP: 10, StockFull: 3,
			StockFisico: &cinco, FechaConteo: &fecha, GrupoConteo: &grupo, UnidadesBulto: 1,
		},
		// Sin contar: las columnas de conteo quedan vacías.
		{Modelo: "NB-14", Descripcion: "Notebook 14", StockERP: 4, UnidadesBulto: 6},
	}

	buf, err := excel.NewInventarioExporter().Exportar(productos)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	get := func(celda string) string {
		v, err := f.GetCellValue("Inventario", celda)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Modelo", get("A1"))
	assert.Equal(t, "TV-55", get("A2"))
	assert.Equal(t, "10", get("C2"))
	assert.Equal(t, "5", get("E2"))
	assert.Equal(t, "2026-08-20", get("F2"))
	assert.Equal(t, "2", get("G2"))

	assert.Equal(t, "NB-14", get("A3"))
	assert.Empty(t, get("E3"), "producto sin contar no lleva conteo")
	assert.Empty(t, get("F3"))
	assert.Equal(t, "6", get("H3"))
}
