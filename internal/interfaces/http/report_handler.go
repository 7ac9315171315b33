package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// ReportHandler relatório de vendas em JSON, PDF ou XLSX.
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Sales godoc
// @Summary      Relatório de vendas por produto
// @Description  Sem format devolve JSON. format=pdf ou format=xlsx devolve o arquivo como anexo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start   query  string  false  "Início (YYYY-MM-DD). Padrão: primeiro dia do mês."
// @Param        end     query  string  false  "Fim (YYYY-MM-DD). Padrão: hoje."
// @Param        format  query  string  false  "pdf ou xlsx"
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	format := c.Query("format")
	if format == "" {
		rep, err := h.uc.SalesReport(c.UserContext(), start, end)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(rep)
	}

	content, filename, contentType, err := h.uc.ExportSalesReport(c.UserContext(), start, end, format)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}
