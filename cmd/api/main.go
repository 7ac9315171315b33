package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/caixa"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Estoque-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/config"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migrations")
		}
		log.Info().Strs("applied", applied).Msg("migrations em dia")
	}

	productRepo := postgres.NewProductRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	productTagRepo := postgres.NewProductTagRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	fiadoRepo := postgres.NewFiadoRepository(pool)
	prejuizoRepo := postgres.NewPrejuizoRepository(pool)
	caixaRepo := postgres.NewCaixaRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(txRunner, productRepo, tagRepo, productTagRepo, cfg.Alerts.ExpiryWindowDays)
	tagUC := usecase.NewTagUseCase(tagRepo, productTagRepo)
	stockUC := inventory.NewStockUseCase(txRunner, movementRepo, fiadoRepo, prejuizoRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(analyticsRepo)
	caixaUC := caixa.NewUseCase(txRunner, caixaRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// Relatório de vendas: PDF (maroto) e planilha (excelize)
	reportUC := report.NewUseCase(reportRepo, infrapdf.NewMarotoPDFGenerator(), infraxlsx.NewExcelizeGenerator())

	authUC := auth.NewAuthUseCase(
		auth.OperatorConfig{
			Username:     cfg.Auth.OperatorUsername,
			PasswordHash: cfg.Auth.OperatorPasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI em http://localhost:<port>/docs quando o arquivo existir
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Estoque API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		TagUC:           tagUC,
		StockUC:         stockUC,
		ReplenishmentUC: replenishmentUC,
		CaixaUC:         caixaUC,
		ReportUC:        reportUC,
		AnalyticsUC:     analyticsUC,
		DashboardUC:     dashboardUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
		Log:             log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
