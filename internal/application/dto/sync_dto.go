package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SincronizarOrdenesResponse resultado de una corrida de sincronización.
type SincronizarOrdenesResponse struct {
	Sincronizadas int        `json:"sincronizadas"`
	Desde         *time.Time `json:"desde,omitempty"`
}

// OrdenMeliResponse orden de marketplace para listados.
type OrdenMeliResponse struct {
	ID          int64           `json:"id"`
	Estado      string          `json:"estado"`
	Comprador   string          `json:"comprador"`
	Total       decimal.Decimal `json:"total"`
	EstadoEnvio string          `json:"estado_envio,omitempty"`
	FechaCreada time.Time       `json:"fecha_creada"`
}
