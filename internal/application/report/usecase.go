// Package report contém o relatório de vendas por período e sua exportação (PDF, XLSX).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// Formatos de exportação aceitos.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// UseCase relatório de vendas: somente movimentações SAIDA contam (fiado entra quando pago).
type UseCase struct {
	reportRepo repository.ReportRepository
	pdf        SalesReportPDFGenerator
	xlsx       SalesReportXLSXGenerator
	now        func() time.Time
}

// NewUseCase constrói o caso de uso injetando os geradores de arquivo.
func NewUseCase(reportRepo repository.ReportRepository, pdf SalesReportPDFGenerator, xlsx SalesReportXLSXGenerator) *UseCase {
	return &UseCase{reportRepo: reportRepo, pdf: pdf, xlsx: xlsx, now: time.Now}
}

// WithClock substitui o relógio (testes).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// SalesReport vendas por produto no período, totais e produto mais vendido.
func (uc *UseCase) SalesReport(ctx context.Context, startStr, endStr string) (*dto.SalesReportDTO, error) {
	start, end, err := dto.ParsePeriod(startStr, endStr, uc.now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.GetSalesSummary(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("relatório: vendas: %w", err)
	}

	out := &dto.SalesReportDTO{
		Success: true,
		Period:  dto.NewPeriodDTO(start, end),
		Rows:    make([]dto.SalesReportRow, 0, len(rows)),
		Totals:  dto.SalesTotalsDTO{Revenue: decimal.Zero, Profit: decimal.Zero},
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.SalesReportRow{
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			QuantitySold:    r.QuantitySold,
			Revenue:         r.Revenue.Round(2),
			EstimatedProfit: r.EstimatedProfit.Round(2),
		})
		out.Totals.Revenue = out.Totals.Revenue.Add(r.Revenue)
		out.Totals.Profit = out.Totals.Profit.Add(r.EstimatedProfit)
		if out.TopProduct == nil || r.QuantitySold > out.TopProduct.QuantitySold {
			out.TopProduct = &dto.TopProductDTO{
				ProductID:    r.ProductID,
				ProductName:  r.ProductName,
				QuantitySold: r.QuantitySold,
			}
		}
	}
	out.Totals.Revenue = out.Totals.Revenue.Round(2)
	out.Totals.Profit = out.Totals.Profit.Round(2)
	return out, nil
}

// ExportSalesReport gera o arquivo do relatório no formato pedido.
//
// Retorna:
//   - (conteúdo, nome do arquivo, content-type, nil) se tudo sair bem.
//   - domain.ErrInvalidInput se o formato ou as datas forem inválidos.
func (uc *UseCase) ExportSalesReport(ctx context.Context, startStr, endStr, format string) ([]byte, string, string, error) {
	if format != FormatPDF && format != FormatXLSX {
		return nil, "", "", domain.ErrInvalidInput
	}
	rep, err := uc.SalesReport(ctx, startStr, endStr)
	if err != nil {
		return nil, "", "", err
	}
	filename := fmt.Sprintf("vendas_%s_%s.%s", rep.Period.StartDate, rep.Period.EndDate, format)

	switch format {
	case FormatPDF:
		b, err := uc.pdf.GenerateSalesReportPDF(ctx, rep)
		if err != nil {
			return nil, "", "", fmt.Errorf("relatório: gerar PDF: %w", err)
		}
		return b, filename, contentTypePDF, nil
	default:
		b, err := uc.xlsx.GenerateSalesReportXLSX(ctx, rep)
		if err != nil {
			return nil, "", "", fmt.Errorf("relatório: gerar XLSX: %w", err)
		}
		return b, filename, contentTypeXLSX, nil
	}
}
