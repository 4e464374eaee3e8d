package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/application/auth"
	"github.com/jhoicas/Inventario-ledger/internal/application/batch"
	"github.com/jhoicas/Inventario-ledger/internal/application/catalog"
	"github.com/jhoicas/Inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/Inventario-ledger/internal/application/snapshot"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.UseCase
	AppendUC  *ledger.AppendUseCase
	CorrectUC *ledger.CorrectUseCase
	LedgerQ   *ledger.QueryUseCase
	BatchUC   *batch.OpenBatchUseCase
	SnapshotQ *snapshot.QueryUseCase
	Auditor   *audit.Auditor
	JWTSecret string
}

// Router registra las rutas de la API. Escrituras del ledger requieren
// admin o manager; correcciones y auditoría, solo admin; lecturas, cualquier
// usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	writer := RequireRole(entity.RoleAdmin.String(), entity.RoleManager.String())
	adminOnly := RequireRole(entity.RoleAdmin.String())

	// Catálogo: ítems y proveedores
	itemHandler := NewItemHandler(deps.CatalogUC)
	items := protected.Group("/items")
	items.Post("/", writer, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id/active", adminOnly, itemHandler.SetActive)

	vendorHandler := NewVendorHandler(deps.CatalogUC)
	vendors := protected.Group("/vendors")
	vendors.Post("/", writer, vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id/active", adminOnly, vendorHandler.SetActive)

	// Ledger: entradas y correcciones
	ledgerHandler := NewLedgerHandler(deps.AppendUC, deps.CorrectUC, deps.LedgerQ)
	txns := protected.Group("/transactions")
	txns.Post("/", writer, ledgerHandler.Append)
	txns.Get("/:id", ledgerHandler.GetByID)
	txns.Post("/:id/corrections", adminOnly, ledgerHandler.Correct)
	txns.Get("/:id/corrections", ledgerHandler.ListCorrections)
	items.Get("/:id/transactions", ledgerHandler.ListByItem)

	// Valoración: MAC vigente e historial
	snapshotHandler := NewSnapshotHandler(deps.SnapshotQ)
	items.Get("/:id/mac", snapshotHandler.CurrentMac)
	items.Get("/:id/mac/history", snapshotHandler.History)

	// Lotes de compra
	batchHandler := NewBatchHandler(deps.BatchUC, deps.LedgerQ)
	batches := protected.Group("/batches")
	batches.Post("/", writer, batchHandler.Open)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Get("/:id/transactions", batchHandler.ListTransactions)

	// Auditoría (solo admin)
	auditHandler := NewAuditHandler(deps.Auditor)
	protected.Get("/audit/:entity_type/:entity_id", adminOnly, auditHandler.ListByEntity)
}
