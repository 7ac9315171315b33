// Package pdf gera o relatório de vendas em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: Relatório de Vendas  │  Período + emissão        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTAQUE: produto mais vendido                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Qtd | Receita | Lucro estimado            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Receita / Lucro estimado                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/report"
)

var _ report.SalesReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 225, Green: 234, Blue: 242}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.SalesReportPDFGenerator com Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GenerateSalesReportPDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(_ context.Context, rep *dto.SalesReportDTO) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("pdf: relatório vazio")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep.Period, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(topProductRow(rep.TopProduct))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(rep.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma venda no período.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableDetailRows(rep.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e período + data de emissão (dir).
func headerRow(period dto.PeriodDTO, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RELATÓRIO DE VENDAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vendas à vista e fiados pagos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(brDate(period.StartDate)+" a "+brDate(period.EndDate), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitido em: "+issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// topProductRow: destaque do produto mais vendido.
func topProductRow(top *dto.TopProductDTO) core.Row {
	desc := "Sem vendas no período"
	if top != nil {
		desc = fmt.Sprintf("%s (%d un.)", top.ProductName, top.QuantitySold)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PRODUTO MAIS VENDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(desc, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela com fundo azul claro.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 6, align.Left),
		h("Qtd.", 2, align.Center),
		h("Receita", 2, align.Right),
		h("Lucro estimado", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableDetailRows: uma linha por produto vendido.
func tableDetailRows(rows []dto.SalesReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(r.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", r.QuantitySold), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatBRL(r.Revenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatBRL(r.EstimatedProfit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(totals dto.SalesTotalsDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("RECEITA TOTAL:"),
			text.New("LUCRO ESTIMADO:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			value(formatBRL(totals.Revenue), 0),
			value(formatBRL(totals.Profit), 6),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// brDate converte "2006-01-02" para "02/01/2006"; devolve a entrada se não for uma data.
func brDate(s string) string {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// formatBRL formata em reais: 1234.5 → "R$ 1.234,50".
func formatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "R$ " + formatMoney(intPart) + "," + frac
}

// formatMoney insere pontos de milhar numa string numérica sem decimais.
// Ex: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
