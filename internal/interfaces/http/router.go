package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/caixa"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	TagUC           *usecase.TagUseCase
	StockUC         *inventory.StockUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	CaixaUC         *caixa.UseCase
	ReportUC        *report.UseCase
	AnalyticsUC     *usecase.AnalyticsUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
	Log             *logger.Logger
}

// Router registra as rotas da API. Sem operador configurado as rotas ficam abertas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	log := deps.Log

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log.Component("auth"))
	api.Post("/auth/login", authHandler.Login)

	var protected fiber.Router = api
	if deps.AuthUC != nil && deps.AuthUC.Enabled() {
		protected = api.Group("", AuthMiddleware(deps.JWTSecret))
	} else {
		log.Warn().Msg("autenticação desligada: OPERATOR_PASSWORD_HASH não configurado")
	}

	// Produtos
	productHandler := NewProductHandler(deps.ProductUC, log.Component("products"))
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/alerts", productHandler.Alerts)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/deactivate", productHandler.Deactivate)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/tags", productHandler.ListTags)
	products.Put("/:id/tags", productHandler.SetTags)
	products.Post("/:id/tags/:tagId", productHandler.AddTag)
	products.Delete("/:id/tags/:tagId", productHandler.RemoveTag)

	// Tags
	tagHandler := NewTagHandler(deps.TagUC, log.Component("tags"))
	tags := protected.Group("/tags")
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)
	tags.Delete("/:id", tagHandler.Delete)
	tags.Get("/:id/products", tagHandler.Products)

	// Estoque
	stockHandler := NewStockHandler(deps.StockUC, deps.ReplenishmentUC, log.Component("stock"))
	stock := protected.Group("/stock")
	stock.Post("/entries", stockHandler.Entry)
	stock.Post("/exits", stockHandler.Exit)
	stock.Post("/movements", stockHandler.RegisterMovement)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Post("/losses", stockHandler.RegisterLoss)
	stock.Get("/losses", stockHandler.ListLosses)
	stock.Get("/losses/reasons", stockHandler.LossReasons)
	stock.Get("/fiados", stockHandler.ListFiados)
	stock.Get("/fiados/:id", stockHandler.GetFiado)
	stock.Post("/fiados/:id/pay", stockHandler.PayFiado)
	stock.Get("/replenishment", stockHandler.GetReplenishmentList)

	// Caixa
	caixaHandler := NewCaixaHandler(deps.CaixaUC, log.Component("caixa"))
	cx := protected.Group("/caixa")
	cx.Post("/open", caixaHandler.Open)
	cx.Get("/today", caixaHandler.Today)
	cx.Get("/open", caixaHandler.CurrentOpen)
	cx.Get("/", caixaHandler.List)
	cx.Get("/:id", caixaHandler.GetByID)
	cx.Post("/:id/close", caixaHandler.Close)

	// Relatórios
	reportHandler := NewReportHandler(deps.ReportUC, log.Component("reports"))
	protected.Get("/reports/sales", reportHandler.Sales)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, log.Component("analytics"))
	an := protected.Group("/analytics")
	an.Get("/sales", analyticsHandler.Sales)
	an.Get("/top-products", analyticsHandler.TopProducts)
	an.Get("/tags", analyticsHandler.Tags)
	an.Get("/stock-value", analyticsHandler.StockValue)
	an.Get("/low-stock", analyticsHandler.LowStock)
	an.Get("/turnover", analyticsHandler.Turnover)
	an.Get("/margins", analyticsHandler.Margins)
	an.Get("/expiring", analyticsHandler.Expiring)
	an.Get("/inactive", analyticsHandler.Inactive)
	an.Get("/monthly", analyticsHandler.Monthly)
	an.Get("/cash-flow", analyticsHandler.CashFlow)
	an.Get("/statistics", analyticsHandler.Statistics)
	an.Get("/fiados", analyticsHandler.Fiados)
	an.Get("/prejuizos", analyticsHandler.Prejuizos)
	an.Get("/prejuizos/reasons", analyticsHandler.PrejuizosByReason)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log.Component("dashboard"))
	protected.Get("/dashboard", dashboardHandler.GetSummary)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
