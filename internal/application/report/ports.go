package report

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

// SalesReportPDFGenerator gera o PDF do relatório de vendas (implementação em infrastructure/pdf).
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportDTO) ([]byte, error)
}

// SalesReportXLSXGenerator gera a planilha do relatório de vendas (implementação em infrastructure/xlsx).
type SalesReportXLSXGenerator interface {
	GenerateSalesReportXLSX(ctx context.Context, report *dto.SalesReportDTO) ([]byte, error)
}
