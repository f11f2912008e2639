package entity

import "time"

// Estados del ciclo de vida de un lote de descarga.
// pendiente → confirmado (ConfirmarLote) y confirmado → pendiente
// (RevertirLote). No existe estado "cancelado": un lote pendiente que no
// se va a usar simplemente se elimina.
const (
	LoteEstadoPendiente  = "pendiente"
	LoteEstadoConfirmado = "confirmado"
)

// Lote agrupa unidades RMA en stock preparadas para su descarga física.
type Lote struct {
	ID           int64
	Estado       string
	CreadoEn     time.Time
	ConfirmadoEn *time.Time // nil mientras el lote no esté confirmado
}

// LoteDetalle es una línea de un lote: referencia una unidad RMA y
// lleva modelo, cantidad y etiqueta de OP desnormalizados para
// auditoría y exportación.
type LoteDetalle struct {
	ID       int64
	LoteID   int64
	RMAID    int64
	Modelo   string
	Cantidad int
	OP       string
}

// LoteResumen es la proyección de listado: el lote más el número de
// líneas que contiene.
type LoteResumen struct {
	Lote
	TotalDetalles int
}
