// Package pdf genera el manifiesto imprimible de un lote de descarga:
// la hoja que acompaña al lote en bodega durante la salida física.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Manifiesto de descarga │ Lote N° + estado      │
//	│  ───────────────────────────────────────────────────────│
//	│  FECHAS: creado / confirmado                            │
//	│  TABLA: RMA | Modelo | OP | Cantidad                    │
//	│  TOTAL de unidades                                      │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ManifiestoGenerator genera el PDF del manifiesto usando Maroto v2.
type ManifiestoGenerator struct{}

func NewManifiestoGenerator() *ManifiestoGenerator { return &ManifiestoGenerator{} }

// Generar arma el manifiesto del lote y devuelve sus bytes.
func (g *ManifiestoGenerator) Generar(lote *entity.Lote, detalles []entity.LoteDetalle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Manifiesto lote %d", lote.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(encabezadoRow(lote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(fechasRow(lote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(cabeceraTablaRow())
	total := 0
	for _, d := range detalles {
		m.AddRows(detalleRow(d))
		total += d.Cantidad
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(totalRow(len(detalles), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar manifiesto: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezadoRow: título (izq) y número de lote + estado (der).
func encabezadoRow(lote *entity.Lote) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("MANIFIESTO DE DESCARGA RMA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Lote N° %d", lote.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Estado: "+lote.Estado, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGris,
			}),
		),
	)
}

// fechasRow: creación y confirmación (— si sigue pendiente).
func fechasRow(lote *entity.Lote) core.Row {
	confirmado := "—"
	if lote.ConfirmadoEn != nil {
		confirmado = lote.ConfirmadoEn.Format("02/01/2006 15:04")
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Creado: %s   |   Confirmado: %s",
				lote.CreadoEn.Format("02/01/2006 15:04"), confirmado,
			), props.Text{Size: 8, Top: 2, Color: colorGris}),
		),
	)
}

func cabeceraTablaRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("RMA", 2, align.Left),
		h("Modelo", 5, align.Left),
		h("OP", 3, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

func detalleRow(d entity.LoteDetalle) core.Row {
	op := d.OP
	if op == "" {
		op = "—"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("#%d", d.RMAID),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(5).Add(text.New(
			d.Modelo,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			op,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			fmt.Sprint(d.Cantidad),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func totalRow(lineas, unidades int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d líneas   |   TOTAL: %d unidades", lineas, unidades), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}
