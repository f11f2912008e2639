package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/auth"
	"github.com/almacenpro/rma-backend/internal/application/backup"
	"github.com/almacenpro/rma-backend/internal/application/catalogo"
	"github.com/almacenpro/rma-backend/internal/application/inventario"
	"github.com/almacenpro/rma-backend/internal/application/lotes"
	"github.com/almacenpro/rma-backend/internal/application/op"
	"github.com/almacenpro/rma-backend/internal/application/productos"
	"github.com/almacenpro/rma-backend/internal/application/rma"
	"github.com/almacenpro/rma-backend/internal/application/sync"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/infrastructure/excel"
	"github.com/almacenpro/rma-backend/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router. SyncUC puede ser nil cuando
// la sincronización de marketplace está deshabilitada por config.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	LotesUC      *lotes.UseCase
	InventarioUC *inventario.UseCase
	RMAUC        *rma.UseCase
	ProductosUC  *productos.UseCase
	CatalogoUC   *catalogo.UseCase
	OPUC         *op.UseCase
	SyncUC       *sync.UseCase
	BackupUC     *backup.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Lotes de descarga (protegido)
	lotesGroup := protected.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LotesUC, pdf.NewManifiestoGenerator())
	lotesGroup.Post("/", loteHandler.Crear)
	lotesGroup.Get("/", loteHandler.Listar)
	lotesGroup.Get("/:id", loteHandler.Detalle)
	lotesGroup.Get("/:id/manifiesto", loteHandler.Manifiesto)
	lotesGroup.Put("/:id/confirmar", loteHandler.Confirmar)
	lotesGroup.Put("/:id/revertir", loteHandler.Revertir)
	lotesGroup.Delete("/:id", loteHandler.Eliminar)

	// Inventario: conteo físico y reconciliación (protegido)
	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC, deps.ProductosUC, excel.NewInventarioExporter())
	invGroup.Put("/conteo", inventarioHandler.GuardarConteo)
	invGroup.Put("/sistema/:origen", inventarioHandler.ActualizarSistema)
	invGroup.Put("/grupo", inventarioHandler.Reagrupar)
	invGroup.Get("/exportar", inventarioHandler.Exportar)

	// RMA (protegido)
	rmaGroup := protected.Group("/rma")
	rmaHandler := NewRMAHandler(deps.RMAUC)
	rmaGroup.Post("/", rmaHandler.Crear)
	rmaGroup.Get("/", rmaHandler.Listar)
	rmaGroup.Get("/:id", rmaHandler.GetByID)
	rmaGroup.Delete("/:id", rmaHandler.Eliminar)

	// Productos (protegido)
	prodGroup := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductosUC, deps.InventarioUC)
	prodGroup.Post("/", productoHandler.Crear)
	prodGroup.Get("/", productoHandler.Listar)
	prodGroup.Get("/:id", productoHandler.GetByID)
	prodGroup.Delete("/:id", productoHandler.Eliminar)
	prodGroup.Put("/:id/bulto", productoHandler.FijarBulto)

	// Catálogo: clientes, marcas, transportes (protegido)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	clientes := protected.Group("/clientes")
	clientes.Post("/", catalogoHandler.CrearCliente)
	clientes.Get("/", catalogoHandler.ListarClientes)
	clientes.Delete("/:id", catalogoHandler.EliminarCliente)
	marcas := protected.Group("/marcas")
	marcas.Post("/", catalogoHandler.CrearMarca)
	marcas.Get("/", catalogoHandler.ListarMarcas)
	marcas.Delete("/:id", catalogoHandler.EliminarMarca)
	transportes := protected.Group("/transportes")
	transportes.Post("/", catalogoHandler.CrearTransporte)
	transportes.Get("/", catalogoHandler.ListarTransportes)
	transportes.Delete("/:id", catalogoHandler.EliminarTransporte)

	// Órdenes de producción (protegido)
	opGroup := protected.Group("/op")
	opHandler := NewOPHandler(deps.OPUC)
	opGroup.Post("/", opHandler.Crear)
	opGroup.Get("/", opHandler.Listar)
	opGroup.Get("/:id/detalles", opHandler.Detalles)
	opGroup.Put("/:id/recepcion", opHandler.Recibir)

	// Marketplace (protegido, solo si hay credenciales)
	if deps.SyncUC != nil {
		meliGroup := protected.Group("/meli")
		syncHandler := NewSyncHandler(deps.SyncUC)
		meliGroup.Post("/sincronizar", syncHandler.Sincronizar)
		meliGroup.Get("/ordenes", syncHandler.Listar)
	}

	// Respaldo SQL (solo admin)
	backupHandler := NewBackupHandler(deps.BackupUC)
	protected.Get("/backup", RequireRol(entity.RolAdmin), backupHandler.Exportar)
}
