package dto

// ConteoFisicoItem es una entrada del body de guardado de conteo físico.
// StockFisico nil se descarta antes de aplicar el batch; cero se guarda
// como NULL (política heredada: cero colapsa a "sin conteo").
type ConteoFisicoItem struct {
	ProductoID  int64 `json:"producto_id"`
	StockFisico *int  `json:"stock_fisico"`
}

// GuardarConteoRequest body para PUT /api/inventario/conteo.
type GuardarConteoRequest struct {
	Conteos []ConteoFisicoItem `json:"conteos"`
}

// StockSistemaItem es una entrada de actualización por modelo.
type StockSistemaItem struct {
	Modelo   string `json:"modelo"`
	Cantidad int    `json:"cantidad"`
}

// ActualizarStockRequest body para PUT /api/inventario/sistema/:origen.
// Accion "borrar" dispara el reinicio masivo de la columna del origen;
// en ese caso Items se ignora.
type ActualizarStockRequest struct {
	Accion string             `json:"accion,omitempty"`
	Items  []StockSistemaItem `json:"items,omitempty"`
}

// ReagruparRequest body para PUT /api/inventario/grupo.
type ReagruparRequest struct {
	Grupo       int     `json:"grupo"`
	ProductoIDs []int64 `json:"producto_ids"`
}

// UnidadesBultoRequest body para PUT /api/productos/:id/bulto.
type UnidadesBultoRequest struct {
	Cantidad int `json:"cantidad"`
}

// FilasAfectadasResponse resultado de las operaciones masivas.
type FilasAfectadasResponse struct {
	Afectadas int64 `json:"afectadas"`
}
