package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// AnalyticsHandler endpoints de análise de vendas, estoque, fiados e perdas.
// Parâmetros numéricos ausentes ou <= 0 usam o padrão do caso de uso.
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUseCase
	log *logger.Logger
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// reply devolve v como JSON ou o erro mapeado.
func reply[T any](c *fiber.Ctx, log *logger.Logger, v T, err error) error {
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(v)
}

// Sales godoc
// @Summary      Vendas no período
// @Description  Totais de receita, lucro e quantidade, com série diária para gráfico.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Início (YYYY-MM-DD). Padrão: primeiro dia do mês."
// @Param        end    query  string  false  "Fim (YYYY-MM-DD). Padrão: hoje."
// @Success      200  {object}  dto.SalesByPeriodDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) Sales(c *fiber.Ctx) error {
	v, err := h.uc.SalesByPeriod(c.UserContext(), c.Query("start"), c.Query("end"))
	return reply(c, h.log, v, err)
}

// TopProducts godoc
// @Summary      Produtos mais vendidos
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de produtos (padrão 10)"
// @Success      200  {array}  dto.ProductSalesDTO
// @Router       /api/analytics/top-products [get]
func (h *AnalyticsHandler) TopProducts(c *fiber.Ctx) error {
	v, err := h.uc.TopProducts(c.UserContext(), c.QueryInt("limit"))
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) Tags(c *fiber.Ctx) error {
	v, err := h.uc.TagPerformance(c.UserContext())
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) StockValue(c *fiber.Ctx) error {
	v, err := h.uc.StockValue(c.UserContext())
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) LowStock(c *fiber.Ctx) error {
	v, err := h.uc.LowStock(c.UserContext())
	return reply(c, h.log, v, err)
}

// Turnover rotatividade; days = janela de vendas.
func (h *AnalyticsHandler) Turnover(c *fiber.Ctx) error {
	v, err := h.uc.Turnover(c.UserContext(), c.QueryInt("days"))
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) Margins(c *fiber.Ctx) error {
	v, err := h.uc.ProfitMargins(c.UserContext())
	return reply(c, h.log, v, err)
}

// Expiring produtos vencendo nos próximos days dias (vencidos incluídos).
func (h *AnalyticsHandler) Expiring(c *fiber.Ctx) error {
	v, err := h.uc.Expiring(c.UserContext(), c.QueryInt("days"))
	return reply(c, h.log, v, err)
}

// Inactive produtos sem venda há days dias.
func (h *AnalyticsHandler) Inactive(c *fiber.Ctx) error {
	v, err := h.uc.Inactive(c.UserContext(), c.QueryInt("days"))
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) Monthly(c *fiber.Ctx) error {
	v, err := h.uc.MonthlySummary(c.UserContext(), c.QueryInt("months"))
	return reply(c, h.log, v, err)
}

// CashFlow godoc
// @Summary      Fluxo de caixa diário
// @Description  Abertura, fechamento e vendas do dia para cada caixa no período.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Início (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fim (YYYY-MM-DD)"
// @Success      200  {array}   dto.CashFlowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/cash-flow [get]
func (h *AnalyticsHandler) CashFlow(c *fiber.Ctx) error {
	v, err := h.uc.CashFlow(c.UserContext(), c.Query("start"), c.Query("end"))
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) Statistics(c *fiber.Ctx) error {
	v, err := h.uc.Statistics(c.UserContext())
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) Fiados(c *fiber.Ctx) error {
	v, err := h.uc.FiadosSummary(c.UserContext())
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) Prejuizos(c *fiber.Ctx) error {
	v, err := h.uc.PrejuizosSummary(c.UserContext())
	return reply(c, h.log, v, err)
}

func (h *AnalyticsHandler) PrejuizosByReason(c *fiber.Ctx) error {
	v, err := h.uc.PrejuizosByReason(c.UserContext(), c.QueryInt("limit"))
	return reply(c, h.log, v, err)
}
