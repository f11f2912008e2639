package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Modelo        string          `json:"modelo"`
	Descripcion   string          `json:"descripcion"`
	MarcaID       *int64          `json:"marca_id,omitempty"`
	Precio        decimal.Decimal `json:"precio"`
	UnidadesBulto int             `json:"unidades_bulto"`
}

// ProductoResponse respuesta de producto en listados y detalle.
type ProductoResponse struct {
	ID            int64           `json:"id"`
	Modelo        string          `json:"modelo"`
	Descripcion   string          `json:"descripcion"`
	MarcaID       *int64          `json:"marca_id,omitempty"`
	Precio        decimal.Decimal `json:"precio"`
	StockERP      int             `json:"stock_erp"`
	StockFull     int             `json:"stock_full"`
	StockFisico   *int            `json:"stock_fisico"`
	FechaConteo   *time.Time      `json:"fecha_conteo,omitempty"`
	GrupoConteo   *int            `json:"grupo_conteo,omitempty"`
	UnidadesBulto int             `json:"unidades_bulto"`
}
