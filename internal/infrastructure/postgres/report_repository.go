package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas do relatório de vendas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesSummary vendas por produto em [start, end), mais vendido primeiro.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, start, end time.Time) ([]repository.SalesSummaryRow, error) {
	query := `
	SELECT
	    p.id::text,
	    p.nome,
	    SUM(m.quantidade)::bigint     AS total_vendido,
	    SUM(` + saleRevenue + `)    AS receita,
	    SUM(` + saleProfit + `)     AS lucro_estimado
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	WHERE m.tipo = 'SAIDA'
	  AND m.data >= $1 AND m.data < $2
	GROUP BY p.id, p.nome
	ORDER BY total_vendido DESC, p.nome`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.GetSalesSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesSummaryRow
	for rows.Next() {
		var row repository.SalesSummaryRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.QuantitySold, &row.Revenue, &row.EstimatedProfit); err != nil {
			return nil, fmt.Errorf("report.GetSalesSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
