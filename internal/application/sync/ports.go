package sync

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrdenMarketplace es una orden cruda tal como la devuelve el
// marketplace, antes de persistirla.
type OrdenMarketplace struct {
	ID          int64
	Estado      string
	Comprador   string
	Total       decimal.Decimal
	EnvioID     *int64
	FechaCreada time.Time
}

// MarketplaceClient puerto del cliente HTTP del marketplace. La
// implementación maneja el refresh del token OAuth por su cuenta.
type MarketplaceClient interface {
	// OrdenesRecientes devuelve las órdenes del vendedor creadas después
	// de desde (todas si desde es nil).
	OrdenesRecientes(ctx context.Context, desde *time.Time) ([]OrdenMarketplace, error)
	// EstadoEnvio devuelve el estado del envío asociado a una orden.
	EstadoEnvio(ctx context.Context, envioID int64) (string, error)
}
