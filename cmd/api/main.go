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
	appanalytics "github.com/jhoicas/Taller-api/internal/application/analytics"
	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/reports"
	"github.com/jhoicas/Taller-api/internal/application/stock"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Taller-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Taller-api/internal/interfaces/http"
	"github.com/jhoicas/Taller-api/pkg/config"
	"github.com/jhoicas/Taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.Name, cfg.App.LogLevel)
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	entryRepo := postgres.NewProductStockRepository(pool)
	cashflowRepo := postgres.NewCashflowRepository(pool)
	orderRepo := postgres.NewWorkshopOrderRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := stock.NewLedgerUseCase(txRunner, productRepo, movementRepo, entryRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo)
	cashflowUC := usecase.NewCashflowUseCase(cashflowRepo)
	orderUC := usecase.NewWorkshopOrderUseCase(orderRepo, productRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, settingRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	cashflowReportUC := reports.NewCashflowReportUseCase(cashflowRepo, pdfGenerator)

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
	app.Use(httpRouter.RequestIDMiddleware())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		LedgerUC:        ledgerUC,
		CashflowUC:      cashflowUC,
		WorkshopOrderUC: orderUC,
		SettingUC:       settingUC,
		UserUC:          userUC,
		DashboardUC:     dashboardUC,
		CashflowReport:  cashflowReportUC,
		JWTCfg:          cfg.JWT,
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
