package dto

import "time"

// ItemLoteRequest es una línea del body de creación de lote.
type ItemLoteRequest struct {
	RMAID    int64  `json:"rma_id"`
	Modelo   string `json:"modelo"`
	Cantidad int    `json:"cantidad"`
	OP       string `json:"op"`
}

// CrearLoteRequest body para POST /api/lotes.
type CrearLoteRequest struct {
	Items []ItemLoteRequest `json:"items"`
}

// LoteResponse respuesta de lote en listados y detalle.
type LoteResponse struct {
	ID           int64      `json:"id"`
	Estado       string     `json:"estado"`
	CreadoEn     time.Time  `json:"creado_en"`
	ConfirmadoEn *time.Time `json:"confirmado_en,omitempty"`
	Detalles     int        `json:"detalles"`
}

// ConfirmarLoteResponse resultado de confirmar o revertir un lote.
type ConfirmarLoteResponse struct {
	LoteID          int64  `json:"lote_id"`
	Estado          string `json:"estado"`
	RMAActualizados int64  `json:"rma_actualizados"`
}

// LoteDetalleResponse línea de lote para el detalle y el manifiesto.
type LoteDetalleResponse struct {
	ID       int64  `json:"id"`
	RMAID    int64  `json:"rma_id"`
	Modelo   string `json:"modelo"`
	Cantidad int    `json:"cantidad"`
	OP       string `json:"op"`
}
