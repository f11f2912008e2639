package entity

import "time"

// Roles de usuario.
const (
	RolAdmin  = "admin"
	RolBodega = "bodega"
)

// Usuario de la aplicación administrativa.
type Usuario struct {
	ID           string // UUID
	Email        string
	Nombre       string
	PasswordHash string
	Rol          string
	CreadoEn     time.Time
}
