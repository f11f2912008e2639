package dto

import "time"

// ItemOPRequest línea del body de creación de OP.
type ItemOPRequest struct {
	Modelo   string `json:"modelo"`
	Cantidad int    `json:"cantidad"`
}

// CrearOPRequest body para POST /api/op.
type CrearOPRequest struct {
	Numero string          `json:"numero"`
	Items  []ItemOPRequest `json:"items"`
}

// RecepcionOPItem entrada del batch de recepción por línea.
type RecepcionOPItem struct {
	DetalleID int64 `json:"detalle_id"`
	Recibido  int   `json:"recibido"`
}

// RecibirOPRequest body para PUT /api/op/:id/recepcion.
type RecibirOPRequest struct {
	Recepciones []RecepcionOPItem `json:"recepciones"`
}

// OPResponse respuesta de orden de producción.
type OPResponse struct {
	ID       int64     `json:"id"`
	Numero   string    `json:"numero"`
	Estado   string    `json:"estado"`
	CreadoEn time.Time `json:"creado_en"`
}

// OPDetalleResponse línea de OP.
type OPDetalleResponse struct {
	ID       int64  `json:"id"`
	Modelo   string `json:"modelo"`
	Cantidad int    `json:"cantidad"`
	Recibido int    `json:"recibido"`
}
