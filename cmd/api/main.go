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

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/application/auth"
	appbatch "github.com/jhoicas/Inventario-ledger/internal/application/batch"
	"github.com/jhoicas/Inventario-ledger/internal/application/catalog"
	"github.com/jhoicas/Inventario-ledger/internal/application/ledger"
	appsnapshot "github.com/jhoicas/Inventario-ledger/internal/application/snapshot"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/Inventario-ledger/pkg/config"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	itemRepo := postgres.NewItemRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	snapRepo := postgres.NewSnapshotRepository(pool)
	corrRepo := postgres.NewCorrectionRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Inventory.LockTimeoutMS)

	auditor := audit.NewAuditor(auditRepo, log.WithComponent("audit"))
	policy := ledger.Policy{
		AllowNegativeStock: cfg.Inventory.AllowNegativeStock,
		MaxRetries:         cfg.Inventory.MaxRetries,
		RetryBackoff:       time.Duration(cfg.Inventory.RetryBackoffMS) * time.Millisecond,
	}

	appendUC := ledger.NewAppendUseCase(txRunner, vendorRepo, batchRepo, auditor, policy)
	correctUC := ledger.NewCorrectUseCase(txRunner, vendorRepo, batchRepo, auditor, policy)
	ledgerQ := ledger.NewQueryUseCase(txnRepo, corrRepo)
	catalogUC := catalog.NewUseCase(itemRepo, vendorRepo, auditor)
	batchUC := appbatch.NewOpenBatchUseCase(batchRepo, vendorRepo, auditor)
	snapshotQ := appsnapshot.NewQueryUseCase(snapRepo, itemRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		AppendUC:  appendUC,
		CorrectUC: correctUC,
		LedgerQ:   ledgerQ,
		BatchUC:   batchUC,
		SnapshotQ: snapshotQ,
		Auditor:   auditor,
		JWTSecret: cfg.JWT.Secret,
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
