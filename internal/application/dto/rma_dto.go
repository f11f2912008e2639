package dto

import "time"

// CrearRMARequest body para POST /api/rma.
type CrearRMARequest struct {
	ClienteID int64   `json:"cliente_id"`
	MarcaID   int64   `json:"marca_id"`
	Modelo    string  `json:"modelo"`
	OPLote    *string `json:"op_lote,omitempty"`
	Motivo    string  `json:"motivo"`
	Cantidad  int     `json:"cantidad"`
}

// RMAResponse respuesta de RMA en listados y detalle.
type RMAResponse struct {
	ID           int64     `json:"id_rma"`
	ClienteID    int64     `json:"cliente_id"`
	MarcaID      int64     `json:"marca_id"`
	Modelo       string    `json:"modelo"`
	OPLote       *string   `json:"op_lote,omitempty"`
	Motivo       string    `json:"motivo"`
	Cantidad     int       `json:"cantidad"`
	EnStock      bool      `json:"en_stock"`
	FechaIngreso time.Time `json:"fecha_ingreso"`
}
