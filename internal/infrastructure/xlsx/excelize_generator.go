// Package xlsx gera o relatório de vendas em planilha Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/report"
)

var _ report.SalesReportXLSXGenerator = (*ExcelizeGenerator)(nil)

// SheetName nome da aba com as vendas.
const SheetName = "Vendas"

const moneyFormat = `"R$" #,##0.00`

type styleRange struct {
	from, to string
	style    int
}

// ExcelizeGenerator implementa report.SalesReportXLSXGenerator.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator constrói o gerador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GenerateSalesReportXLSX monta a planilha: período, cabeçalho, uma linha por produto e totais.
func (g *ExcelizeGenerator) GenerateSalesReportXLSX(_ context.Context, rep *dto.SalesReportDTO) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("xlsx: relatório vazio")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renomear aba: %w", err)
	}

	money := moneyFormat
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "00467F"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E1EAF2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo do cabeçalho: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &money})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo monetário: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &money})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo dos totais: %w", err)
	}

	set := func(cell string, v any) {
		if err == nil {
			err = f.SetCellValue(SheetName, cell, v)
		}
	}

	set("A1", "Relatório de Vendas")
	set("A2", "Período")
	set("B2", rep.Period.StartDate+" a "+rep.Period.EndDate)
	if rep.TopProduct != nil {
		set("A3", "Mais vendido")
		set("B3", fmt.Sprintf("%s (%d)", rep.TopProduct.ProductName, rep.TopProduct.QuantitySold))
	}

	const headerRow = 5
	for i, h := range []string{"Produto", "Quantidade", "Receita", "Lucro estimado"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
	}

	r := headerRow
	for _, line := range rep.Rows {
		r++
		set(fmt.Sprintf("A%d", r), line.ProductName)
		set(fmt.Sprintf("B%d", r), line.QuantitySold)
		set(fmt.Sprintf("C%d", r), line.Revenue.InexactFloat64())
		set(fmt.Sprintf("D%d", r), line.EstimatedProfit.InexactFloat64())
	}
	totalRow := r + 2
	set(fmt.Sprintf("A%d", totalRow), "Total")
	set(fmt.Sprintf("C%d", totalRow), rep.Totals.Revenue.InexactFloat64())
	set(fmt.Sprintf("D%d", totalRow), rep.Totals.Profit.InexactFloat64())
	if err != nil {
		return nil, fmt.Errorf("xlsx: preencher células: %w", err)
	}

	styles := []styleRange{
		{"A5", "D5", headerStyle},
		{fmt.Sprintf("A%d", totalRow), fmt.Sprintf("D%d", totalRow), totalStyle},
	}
	if r > headerRow {
		styles = append(styles, styleRange{fmt.Sprintf("C%d", headerRow+1), fmt.Sprintf("D%d", r), moneyStyle})
	}
	for _, s := range styles {
		if err := f.SetCellStyle(SheetName, s.from, s.to, s.style); err != nil {
			return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 40); err != nil {
		return nil, fmt.Errorf("xlsx: largura de coluna: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "D", 16); err != nil {
		return nil, fmt.Errorf("xlsx: largura de coluna: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
