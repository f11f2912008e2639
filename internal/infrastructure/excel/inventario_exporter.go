// Package excel genera la planilla de inventario (.xlsx) que bodega usa
// para recorrer las zonas durante el conteo físico.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/almacenpro/rma-backend/internal/domain/entity"
)

const hojaInventario = "Inventario"

// InventarioExporter vuelca el catálogo con sus stocks a un libro Excel.
type InventarioExporter struct{}

func NewInventarioExporter() *InventarioExporter {
	return &InventarioExporter{}
}

// Exportar devuelve el .xlsx en memoria. Las columnas de conteo físico,
// fecha y grupo quedan vacías cuando el producto aún no fue contado.
func (e *InventarioExporter) Exportar(productos []entity.Producto) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", hojaInventario)

	f.SetCellValue(hojaInventario, "A1", "Modelo")
	f.SetCellValue(hojaInventario, "B1", "Descripción")
	f.SetCellValue(hojaInventario, "C1", "Stock ERP")
	f.SetCellValue(hojaInventario, "D1", "Stock Full")
	f.SetCellValue(hojaInventario, "E1", "Conteo físico")
	f.SetCellValue(hojaInventario, "F1", "Fecha conteo")
	f.SetCellValue(hojaInventario, "G1", "Grupo")
	f.SetCellValue(hojaInventario, "H1", "Unid. por bulto")

	for i, p := range productos {
		fila := i + 2
		f.SetCellValue(hojaInventario, fmt.Sprintf("A%d", fila), p.Modelo)
		f.SetCellValue(hojaInventario, fmt.Sprintf("B%d", fila), p.Descripcion)
		f.SetCellValue(hojaInventario, fmt.Sprintf("C%d", fila), p.StockERP)
		f.SetCellValue(hojaInventario, fmt.Sprintf("D%d", fila), p.StockFull)
		if p.StockFisico != nil {
			f.SetCellValue(hojaInventario, fmt.Sprintf("E%d", fila), *p.StockFisico)
		}
		if p.FechaConteo != nil {
			f.SetCellValue(hojaInventario, fmt.Sprintf("F%d", fila), p.FechaConteo.Format("2006-01-02"))
		}
		if p.GrupoConteo != nil {
			f.SetCellValue(hojaInventario, fmt.Sprintf("G%d", fila), *p.GrupoConteo)
		}
		f.SetCellValue(hojaInventario, fmt.Sprintf("H%d", fila), p.UnidadesBulto)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir planilla: %w", err)
	}
	return buf, nil
}
