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

	"github.com/jhoicas/Lotes-api/internal/application/auth"
	"github.com/jhoicas/Lotes-api/internal/application/reports"
	"github.com/jhoicas/Lotes-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Lotes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Lotes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Lotes-api/internal/interfaces/http"
	"github.com/jhoicas/Lotes-api/pkg/config"
	"github.com/jhoicas/Lotes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	lotExpenseRepo := postgres.NewLotExpenseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Reportes: JSON + PDF (maroto) sobre las mismas consultas
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportFacade := reports.NewFacade(reportRepo, lotRepo, pdfGenerator, cfg.Report.LotsLimit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lotes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:     usecase.NewClientUseCase(clientRepo),
		ProductUC:    usecase.NewProductUseCase(productRepo),
		LotUC:        usecase.NewLotUseCase(lotRepo),
		ExpenseUC:    usecase.NewExpenseUseCase(expenseRepo),
		LotExpenseUC: usecase.NewLotExpenseUseCase(lotExpenseRepo, txRunner),
		SaleUC:       usecase.NewSaleUseCase(saleRepo, txRunner),
		AuthUC:       authUC,
		Reports:      reportFacade,
		Page: httpRouter.PageConfig{
			DefaultLimit: cfg.Report.PageDefaultLimit,
			MaxLimit:     cfg.Report.PageMaxLimit,
		},
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
