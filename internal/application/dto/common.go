package dto

// Respuesta es el sobre JSON estándar de la API.
// Success false siempre viene acompañado de Message.
type Respuesta struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(data any) Respuesta {
	return Respuesta{Success: true, Data: data}
}

// OKMensaje construye una respuesta exitosa con mensaje y datos.
func OKMensaje(message string, data any) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data}
}

// Error construye una respuesta fallida.
func Error(message string) Respuesta {
	return Respuesta{Success: false, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
