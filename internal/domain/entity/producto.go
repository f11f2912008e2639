package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un modelo (SKU) del catálogo.
//
// StockERP y StockFull son las cantidades que reportan los dos sistemas
// de origen (ERP interno y bodega Full del marketplace). StockFisico es
// el conteo físico del ciclo en curso: nil significa "todavía sin
// contar"; por política heredada un conteo de cero también se guarda
// como nil (cero colapsa a NULL, ver motor de inventario).
type Producto struct {
	ID            int64
	Modelo        string // clave de negocio única (SKU)
	Descripcion   string
	MarcaID       *int64
	Precio        decimal.Decimal
	StockERP      int
	StockFull     int
	StockFisico   *int
	FechaConteo   *time.Time
	GrupoConteo   *int // agrupación para el conteo físico por zonas
	UnidadesBulto int
	CreadoEn      time.Time
}

// Origen identifica uno de los dos sistemas de entrada de stock.
type Origen string

const (
	OrigenERP  Origen = "erp"
	OrigenFull Origen = "full"
)

// Valido reporta si el origen es uno de los dos sistemas conocidos.
func (o Origen) Valido() bool {
	return o == OrigenERP || o == OrigenFull
}
