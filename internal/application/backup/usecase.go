package backup

import (
	"context"
	"io"
)

// Dumper puerto del exportador SQL: escribe en w un volcado con
// sentencias INSERT de las tablas administrativas.
type Dumper interface {
	Dump(ctx context.Context, w io.Writer) error
}

// UseCase exporta el respaldo SQL de la base. El volcado se stremea al
// writer del caller (la respuesta HTTP) sin bufferizarlo entero.
type UseCase struct {
	dumper Dumper
}

// NewUseCase construye el caso de uso.
func NewUseCase(dumper Dumper) *UseCase {
	return &UseCase{dumper: dumper}
}

// Exportar escribe el volcado SQL en w.
func (uc *UseCase) Exportar(ctx context.Context, w io.Writer) error {
	return uc.dumper.Dump(ctx, w)
}
