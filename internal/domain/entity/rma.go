package entity

import "time"

// RMA representa una unidad devuelta en seguimiento.
//
// EnStock es la única fuente de verdad sobre si la unidad está
// físicamente presente y puede entrar en un lote de descarga: true hasta
// que un lote confirmado la reclama, y vuelve a true si ese lote se
// revierte.
type RMA struct {
	ID           int64
	ClienteID    int64
	MarcaID      int64
	Modelo       string // referencia al producto por SKU
	OPLote       *string
	Motivo       string
	Cantidad     int
	EnStock      bool
	FechaIngreso time.Time
}
