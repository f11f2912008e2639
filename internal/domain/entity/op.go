package entity

import "time"

// Estados de una orden de producción.
const (
	OPEstadoAbierta  = "abierta"
	OPEstadoRecibida = "recibida"
	OPEstadoCerrada  = "cerrada"
)

// OrdenProduccion ("OP") es una orden de compra/producción sobre la que
// se reciben productos en lotes.
type OrdenProduccion struct {
	ID       int64
	Numero   string // etiqueta visible, única
	Estado   string
	CreadoEn time.Time
}

// OPDetalle es una línea de una orden de producción.
type OPDetalle struct {
	ID       int64
	OPID     int64
	Modelo   string
	Cantidad int
	Recibido int
}
