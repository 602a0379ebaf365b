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
	"github.com/zackv/zvshop-api/internal/application/auth"
	"github.com/zackv/zvshop-api/internal/application/catalog"
	"github.com/zackv/zvshop-api/internal/application/debt"
	"github.com/zackv/zvshop-api/internal/application/inventory"
	"github.com/zackv/zvshop-api/internal/application/reports"
	"github.com/zackv/zvshop-api/internal/application/sales"
	"github.com/zackv/zvshop-api/internal/application/settings"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/profit"
	infrapdf "github.com/zackv/zvshop-api/internal/infrastructure/pdf"
	"github.com/zackv/zvshop-api/internal/infrastructure/postgres"
	httpRouter "github.com/zackv/zvshop-api/internal/interfaces/http"
	"github.com/zackv/zvshop-api/pkg/config"
	"github.com/zackv/zvshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	paymentRepo := postgres.NewDebtPaymentRepository(pool)
	correctionRepo := postgres.NewDebtCorrectionRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// Conversión de monedas: las tasas vigentes salen de la fila única de
	// settings; las ventas ETB llevan además su tasa congelada.
	converter := currency.NewConverter(settings.NewProvider(settingsRepo))
	calculator := profit.NewCalculator(converter, log)

	salesTx := postgres.NewSalesTxRunner(pool)
	debtTx := postgres.NewDebtTxRunner(pool)
	inventoryTx := postgres.NewInventoryTxRunner(pool)

	restockUC := inventory.NewRestockUseCase(inventoryTx, logRepo)
	reconcileUC := inventory.NewReconcileUseCase(inventoryTx, productRepo, log)
	productUC := catalog.NewProductUseCase(productRepo, categoryRepo, restockUC)
	customerUC := catalog.NewCustomerUseCase(customerRepo)
	createSaleUC := sales.NewCreateSaleUseCase(salesTx, converter, saleRepo, productRepo, customerRepo)
	editSaleUC := sales.NewEditSaleUseCase(salesTx, converter, saleRepo, productRepo, customerRepo)
	recordPaymentUC := debt.NewRecordPaymentUseCase(debtTx, paymentRepo)
	correctDebtUC := debt.NewCorrectDebtUseCase(debtTx, correctionRepo)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, calculator)
	settingsUC := settings.NewUseCase(settingsRepo)

	// PDF: recibo de venta para el cliente
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.ShopName)
	salePDFUC := sales.NewPDFUseCase(saleRepo, customerRepo, productRepo, receiptGenerator)

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
		Title:    "ZV Shop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		CreateSale:    createSaleUC,
		EditSale:      editSaleUC,
		SalePDF:       salePDFUC,
		RecordPayment: recordPaymentUC,
		CorrectDebt:   correctDebtUC,
		RestockUC:     restockUC,
		ReconcileUC:   reconcileUC,
		DashboardUC:   dashboardUC,
		SettingsUC:    settingsUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
