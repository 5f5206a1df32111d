package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/analytics"
	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/reports"
	"github.com/jhoicas/Taller-api/internal/application/stock"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	LedgerUC        *stock.LedgerUseCase
	CashflowUC      *usecase.CashflowUseCase
	WorkshopOrderUC *usecase.WorkshopOrderUseCase
	SettingUC       *usecase.SettingUseCase
	UserUC          *usecase.UserUseCase
	DashboardUC     *analytics.DashboardUseCase
	CashflowReport  *reports.CashflowReportUseCase
	JWTCfg          config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Observabilidad (público)
	app.Get("/metrics", MetricsHandler())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTCfg)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/user", AuthMiddleware(deps.JWTCfg.Secret, deps.JWTCfg.CookieName), authHandler.CurrentUser)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTCfg.Secret, deps.JWTCfg.CookieName))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/reconcile", productHandler.Reconcile)

	// Movimientos de stock (protegido, ledger)
	movements := protected.Group("/stock-movements")
	stockHandler := NewStockHandler(deps.LedgerUC)
	movements.Post("/", stockHandler.RegisterMovement)
	movements.Get("/", stockHandler.ListMovements)

	// Entradas de stock por ubicación (protegido, ledger)
	productStock := protected.Group("/product-stock")
	productStockHandler := NewProductStockHandler(deps.LedgerUC)
	productStock.Post("/", productStockHandler.Create)
	productStock.Get("/", productStockHandler.List)
	productStock.Get("/:id", productStockHandler.GetByID)
	productStock.Patch("/:id", productStockHandler.Update)
	productStock.Delete("/:id", productStockHandler.Delete)

	// Cashflows (protegido)
	cashflows := protected.Group("/cashflows")
	cashflowHandler := NewCashflowHandler(deps.CashflowUC)
	cashflows.Post("/", cashflowHandler.Create)
	cashflows.Get("/", cashflowHandler.List)

	// Workshop orders (protegido)
	orders := protected.Group("/workshop-orders")
	orderHandler := NewWorkshopOrderHandler(deps.WorkshopOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Post("/", settingHandler.Set)
	settings.Get("/:key", settingHandler.Get)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Patch("/:id", userHandler.Update)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.CashflowReport)
	reportsGroup.Get("/cashflow", reportHandler.CashflowPDF)
}
