package dto

// CrearClienteRequest body para POST /api/clientes.
type CrearClienteRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// CrearMarcaRequest body para POST /api/marcas.
type CrearMarcaRequest struct {
	Nombre string `json:"nombre"`
}

// CrearTransporteRequest body para POST /api/transportes.
type CrearTransporteRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	CUIT     string `json:"cuit"`
}
