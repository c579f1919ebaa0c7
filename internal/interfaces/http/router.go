package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/textil-erp/internal/application/auth"
	appinventory "github.com/jhoicas/textil-erp/internal/application/inventory"
	apppettycash "github.com/jhoicas/textil-erp/internal/application/pettycash"
	"github.com/jhoicas/textil-erp/internal/application/reporting"
	"github.com/jhoicas/textil-erp/internal/application/usecase"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	LocationUC   *usecase.LocationUseCase
	ProductUC    *usecase.ProductUseCase
	InventoryUC  *appinventory.UseCase
	PettyCashUC  *apppettycash.UseCase
	LedgerReport *reporting.LedgerReportUseCase
	XMLExport    *reporting.XMLExportUseCase
	DashboardUC  *reporting.DashboardUseCase
	AuthUC       *auth.UseCase
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

	// Companies (público: onboarding de empresas)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Inventory positions (protegido; mutaciones solo admin/almacenista)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), inventoryHandler.Create)
	invGroup.Post("/:id/adjust", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), inventoryHandler.AdjustStock)
	invGroup.Post("/:id/reserve", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), inventoryHandler.ChangeReservation)
	invGroup.Get("/:id/movements", inventoryHandler.ListMovements)
	invGroup.Delete("/:id", RequireRole(entity.RoleAdmin), inventoryHandler.Delete)

	// Petty cash (protegido; asientos admin/custodio)
	pettyCash := protected.Group("/petty-cash")
	pettyCashHandler := NewPettyCashHandler(deps.PettyCashUC, deps.LedgerReport, deps.XMLExport)
	pettyCash.Get("/accounts", pettyCashHandler.ListAccounts)
	pettyCash.Post("/accounts", RequireRole(entity.RoleAdmin), pettyCashHandler.CreateAccount)
	pettyCash.Get("/accounts/:id", pettyCashHandler.GetAccount)
	pettyCash.Delete("/accounts/:id", RequireRole(entity.RoleAdmin), pettyCashHandler.DeactivateAccount)
	pettyCash.Get("/accounts/:id/transactions", pettyCashHandler.ListTransactions)
	pettyCash.Post("/accounts/:id/transactions", RequireRole(entity.RoleAdmin, entity.RoleCustodio), pettyCashHandler.CreateTransaction)
	pettyCash.Get("/accounts/:id/summary", pettyCashHandler.PeriodSummary)
	pettyCash.Get("/accounts/:id/report.pdf", pettyCashHandler.LedgerReport)
	pettyCash.Get("/export.xml", RequireRole(entity.RoleAdmin), pettyCashHandler.ExportXML)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
