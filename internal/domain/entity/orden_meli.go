package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenMeli es una orden del marketplace sincronizada localmente.
// Se identifica por el ID que asigna MercadoLibre (no por serial propio).
type OrdenMeli struct {
	ID             int64 // ID de la orden en el marketplace
	Estado         string
	Comprador      string
	Total          decimal.Decimal
	EstadoEnvio    string // enriquecido desde el recurso de shipments
	FechaCreada    time.Time
	SincronizadaEn time.Time
}
