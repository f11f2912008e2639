package entity

import "time"

// Cliente de la empresa (emisor de devoluciones).
type Cliente struct {
	ID        int64
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	CreadoEn  time.Time
}

// Marca de producto.
type Marca struct {
	ID     int64
	Nombre string
}

// Transporte es una empresa transportista usada para retiros y despachos.
type Transporte struct {
	ID       int64
	Nombre   string
	Telefono string
	CUIT     string
}
