package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zackv/zvshop-api/internal/application/auth"
	"github.com/zackv/zvshop-api/internal/application/catalog"
	"github.com/zackv/zvshop-api/internal/application/debt"
	"github.com/zackv/zvshop-api/internal/application/inventory"
	"github.com/zackv/zvshop-api/internal/application/reports"
	"github.com/zackv/zvshop-api/internal/application/sales"
	"github.com/zackv/zvshop-api/internal/application/settings"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *catalog.ProductUseCase
	CustomerUC    *catalog.CustomerUseCase
	CreateSale    *sales.CreateSaleUseCase
	EditSale      *sales.EditSaleUseCase
	SalePDF       *sales.PDFUseCase
	RecordPayment *debt.RecordPaymentUseCase
	CorrectDebt   *debt.CorrectDebtUseCase
	RestockUC     *inventory.RestockUseCase
	ReconcileUC   *inventory.ReconcileUseCase
	DashboardUC   *reports.DashboardUseCase
	SettingsUC    *settings.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público solo el login; la creación de usuarios es de ADMIN)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products y categorías
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.RestockUC, deps.ReconcileUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Post("/:id/restock", inventoryHandler.Restock)
	products.Get("/:id/inventory", inventoryHandler.History)

	categories := protected.Group("/categories")
	categories.Post("/", productHandler.CreateCategory)
	categories.Get("/", productHandler.ListCategories)

	// Customers y su historial de deuda
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	saleHandler := NewSaleHandler(deps.CreateSale, deps.EditSale, deps.SalePDF)
	debtHandler := NewDebtHandler(deps.RecordPayment, deps.CorrectDebt)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/debtors", customerHandler.Debtors)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)
	customers.Get("/:id/sales", saleHandler.ListByCustomer)
	customers.Post("/:id/payments", debtHandler.RecordPayment)
	customers.Get("/:id/payments", debtHandler.ListPayments)
	customers.Post("/:id/debt-corrections", adminOnly, debtHandler.CorrectDebt)
	customers.Get("/:id/debt-corrections", adminOnly, debtHandler.ListCorrections)

	// Sales
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", adminOnly, saleHandler.Edit)
	salesGroup.Get("/:id/receipt", saleHandler.ReceiptPDF)

	// Reconciliación de inventario (solo ADMIN)
	protected.Post("/inventory/reconcile", adminOnly, inventoryHandler.Reconcile)

	// Dashboard (solo ADMIN: expone ganancias)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", adminOnly, dashboardHandler.Summary)

	// Settings de tasas (solo ADMIN)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup := protected.Group("/settings", adminOnly)
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Put("/rates", settingsHandler.UpdateRates)

	// Users (solo ADMIN)
	users := protected.Group("/users", adminOnly)
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
}
