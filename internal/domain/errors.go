package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrLoteVacio          = errors.New("el lote no tiene detalles")
)

// EstadoLoteError indica que la operación no es válida para el estado
// actual del lote. El mensaje siempre reporta el estado encontrado.
type EstadoLoteError struct {
	Estado string
}

func (e *EstadoLoteError) Error() string {
	return fmt.Sprintf("operación no válida para un lote en estado %q", e.Estado)
}

// EsErrorDeEstado reporta si err es un rechazo por estado de ciclo de vida
// del lote (EstadoLoteError o ErrLoteVacio). Los handlers lo mapean a 400.
func EsErrorDeEstado(err error) bool {
	var el *EstadoLoteError
	return errors.As(err, &el) || errors.Is(err, ErrLoteVacio)
}
