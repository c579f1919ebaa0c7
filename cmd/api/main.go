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
	_ "github.com/jhoicas/textil-erp/docs"
	"github.com/jhoicas/textil-erp/internal/application/auth"
	appinventory "github.com/jhoicas/textil-erp/internal/application/inventory"
	apppettycash "github.com/jhoicas/textil-erp/internal/application/pettycash"
	"github.com/jhoicas/textil-erp/internal/application/reporting"
	"github.com/jhoicas/textil-erp/internal/application/usecase"
	infrapdf "github.com/jhoicas/textil-erp/internal/infrastructure/pdf"
	"github.com/jhoicas/textil-erp/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/textil-erp/internal/interfaces/http"
	"github.com/jhoicas/textil-erp/pkg/config"
	"github.com/jhoicas/textil-erp/pkg/logger"
)

// @title        Textil ERP API
// @version      1.0
// @description  API multi-tenant para empresas de confección: caja menor e inventario por sede.
// @BasePath     /
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewLocationInventoryRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	accountRepo := postgres.NewPettyCashAccountRepository(pool)
	txnRepo := postgres.NewPettyCashTransactionRepository(pool)
	reportingRepo := postgres.NewReportingRepository(pool)

	pettyCashTx := postgres.NewPettyCashTxRunner(pool)
	inventoryTx := postgres.NewInventoryTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := appinventory.NewUseCase(inventoryTx, invRepo, productRepo, locationRepo, movementRepo)
	pettyCashUC := apppettycash.NewUseCase(pettyCashTx, accountRepo, txnRepo, locationRepo)

	pdfGenerator := infrapdf.NewMarotoLedgerGenerator()
	ledgerReportUC := reporting.NewLedgerReportUseCase(companyRepo, accountRepo, txnRepo, pdfGenerator)
	xmlExportUC := reporting.NewXMLExportUseCase(companyRepo, accountRepo, txnRepo)
	dashboardUC := reporting.NewDashboardUseCase(reportingRepo)

	authUC := auth.NewUseCase(userRepo, companyRepo, auth.JWTConfig{
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
		Title:    "Textil ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		LocationUC:   locationUC,
		ProductUC:    productUC,
		InventoryUC:  inventoryUC,
		PettyCashUC:  pettyCashUC,
		LedgerReport: ledgerReportUC,
		XMLExport:    xmlExportUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
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
