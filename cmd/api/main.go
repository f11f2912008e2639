package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/almacenpro/rma-backend/internal/application/auth"
	"github.com/almacenpro/rma-backend/internal/application/backup"
	"github.com/almacenpro/rma-backend/internal/application/catalogo"
	"github.com/almacenpro/rma-backend/internal/application/inventario"
	"github.com/almacenpro/rma-backend/internal/application/lotes"
	"github.com/almacenpro/rma-backend/internal/application/op"
	"github.com/almacenpro/rma-backend/internal/application/productos"
	"github.com/almacenpro/rma-backend/internal/application/rma"
	appsync "github.com/almacenpro/rma-backend/internal/application/sync"
	"github.com/almacenpro/rma-backend/internal/infrastructure/meli"
	"github.com/almacenpro/rma-backend/internal/infrastructure/postgres"
	httpRouter "github.com/almacenpro/rma-backend/internal/interfaces/http"
	"github.com/almacenpro/rma-backend/pkg/config"
	"github.com/almacenpro/rma-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios atados al pool (lecturas y escrituras sueltas).
	productoRepo := postgres.NewProductoRepository(pool)
	rmaRepo := postgres.NewRMARepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	transporteRepo := postgres.NewTransporteRepository(pool)
	opRepo := postgres.NewOPRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	ordenMeliRepo := postgres.NewOrdenMeliRepository(pool)
	dumpRepo := postgres.NewDumpRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	lotesUC := lotes.NewUseCase(txRunner, loteRepo)
	inventarioUC := inventario.NewUseCase(txRunner, productoRepo)
	rmaUC := rma.NewUseCase(rmaRepo)
	productosUC := productos.NewUseCase(productoRepo)
	catalogoUC := catalogo.NewUseCase(clienteRepo, marcaRepo, transporteRepo)
	opUC := op.NewUseCase(txRunner, opRepo)
	backupUC := backup.NewUseCase(dumpRepo)
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Sincronización de marketplace: solo si hay credenciales.
	var syncUC *appsync.UseCase
	if cfg.Meli.Habilitada() {
		meliClient := meli.NewClient(
			cfg.Meli.ClientID, cfg.Meli.ClientSecret,
			cfg.Meli.RefreshToken, cfg.Meli.SellerID,
		)
		syncUC = appsync.NewUseCase(meliClient, ordenMeliRepo, log)
	} else {
		log.Warn().Msg("sincronización de marketplace deshabilitada: faltan credenciales")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén RMA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LotesUC:      lotesUC,
		InventarioUC: inventarioUC,
		RMAUC:        rmaUC,
		ProductosUC:  productosUC,
		CatalogoUC:   catalogoUC,
		OPUC:         opUC,
		SyncUC:       syncUC,
		BackupUC:     backupUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
