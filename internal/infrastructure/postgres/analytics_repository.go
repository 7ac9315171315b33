package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// Expressões de venda por linha de movimentação SAIDA. Movimentações antigas sem preço
// registrado caem no preço de venda atual do produto.
const (
	saleUnitPrice = `COALESCE(m.valor_unitario, p.valor_venda)`
	saleRevenue   = `m.quantidade * ` + saleUnitPrice
	saleProfit    = `m.quantidade * (` + saleUnitPrice + ` - p.valor_compra)`
)

// AnalyticsRepo consultas de leitura para indicadores de vendas, estoque, fiados e prejuízos.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador de analytics.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesByPeriod faturamento e lucro por dia com vendas em [start, end).
func (r *AnalyticsRepo) GetSalesByPeriod(ctx context.Context, start, end time.Time) ([]repository.DailySales, error) {
	query := `
	SELECT
	    m.data::date                     AS dia,
	    COALESCE(SUM(` + saleRevenue + `), 0) AS faturamento,
	    COALESCE(SUM(` + saleProfit + `), 0)  AS lucro
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	WHERE m.tipo = 'SAIDA'
	  AND m.data >= $1 AND m.data < $2
	GROUP BY dia
	ORDER BY dia`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySales
	for rows.Next() {
		var row repository.DailySales
		if err := rows.Scan(&row.Date, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts os `limit` produtos mais vendidos (quantidade) de todos os tempos.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.ProductSales, error) {
	query := `
	SELECT
	    p.id::text,
	    p.nome,
	    SUM(m.quantidade)::bigint          AS total_vendido,
	    SUM(` + saleRevenue + `)         AS faturamento,
	    SUM(` + saleProfit + `)          AS lucro
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	WHERE m.tipo = 'SAIDA'
	GROUP BY p.id, p.nome
	ORDER BY total_vendido DESC, p.nome
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSales
	for rows.Next() {
		var row repository.ProductSales
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.QuantitySold, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTagPerformance vendas agregadas por tag. Tags sem vendas aparecem com zero.
func (r *AnalyticsRepo) GetTagPerformance(ctx context.Context) ([]repository.TagPerformance, error) {
	query := `
	SELECT
	    t.nome,
	    COUNT(DISTINCT p.id)::int                      AS total_produtos,
	    COALESCE(SUM(m.quantidade), 0)::bigint           AS total_vendido,
	    COALESCE(SUM(` + saleRevenue + `), 0)          AS faturamento,
	    COALESCE(SUM(` + saleProfit + `), 0)           AS lucro
	FROM produto_tag pt
	JOIN tags t     ON t.id = pt.tag_id
	JOIN produtos p ON p.id = pt.produto_id
	LEFT JOIN movimentacoes m ON m.produto_id = p.id AND m.tipo = 'SAIDA'
	GROUP BY t.id, t.nome
	ORDER BY faturamento DESC, t.nome`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTagPerformance: %w", err)
	}
	defer rows.Close()

	var results []repository.TagPerformance
	for rows.Next() {
		var row repository.TagPerformance
		if err := rows.Scan(&row.Tag, &row.Products, &row.QuantitySold, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("analytics.GetTagPerformance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetStockValue valor de custo e de venda do estoque dos produtos ativos.
func (r *AnalyticsRepo) GetStockValue(ctx context.Context) (*repository.StockValue, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantidade * valor_compra), 0),
	    COALESCE(SUM(quantidade * valor_venda), 0),
	    COUNT(*)::int,
	    COALESCE(SUM(quantidade), 0)::bigint
	FROM produtos
	WHERE ativo`

	var v repository.StockValue
	if err := r.q.QueryRow(ctx, query).Scan(&v.CostValue, &v.SaleValue, &v.Products, &v.Items); err != nil {
		return nil, fmt.Errorf("analytics.GetStockValue: %w", err)
	}
	return &v, nil
}

// GetLowStockProducts produtos ativos com quantidade abaixo do mínimo, menor quantidade primeiro.
func (r *AnalyticsRepo) GetLowStockProducts(ctx context.Context) ([]repository.LowStockItem, error) {
	const query = `
	SELECT id::text, nome, quantidade, estoque_minimo, valor_compra, valor_venda
	FROM produtos
	WHERE ativo AND quantidade < estoque_minimo
	ORDER BY quantidade, nome`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetLowStockProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockItem
	for rows.Next() {
		var row repository.LowStockItem
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.MinStock,
			&row.PurchasePrice, &row.SalePrice); err != nil {
			return nil, fmt.Errorf("analytics.GetLowStockProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTurnover movimentações por produto nos últimos `days` dias, mais saídas primeiro.
func (r *AnalyticsRepo) GetTurnover(ctx context.Context, days int) ([]repository.TurnoverItem, error) {
	const query = `
	SELECT
	    p.id::text,
	    p.nome,
	    COUNT(m.id)::int                                                            AS num_movimentacoes,
	    COALESCE(SUM(CASE WHEN m.tipo = 'SAIDA'   THEN m.quantidade END), 0)::bigint AS total_saidas,
	    COALESCE(SUM(CASE WHEN m.tipo = 'ENTRADA' THEN m.quantidade END), 0)::bigint AS total_entradas
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	WHERE m.data >= CURRENT_DATE - $1::int
	GROUP BY p.id, p.nome
	ORDER BY total_saidas DESC, p.nome`

	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTurnover: %w", err)
	}
	defer rows.Close()

	var results []repository.TurnoverItem
	for rows.Next() {
		var row repository.TurnoverItem
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Movements, &row.Exits, &row.Entries); err != nil {
			return nil, fmt.Errorf("analytics.GetTurnover scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetProfitMargins preços cadastrais e lucro realizado dos produtos ativos.
// O percentual de margem é calculado no caso de uso.
func (r *AnalyticsRepo) GetProfitMargins(ctx context.Context) ([]repository.MarginItem, error) {
	query := `
	SELECT
	    p.id::text,
	    p.nome,
	    p.valor_compra,
	    p.valor_venda,
	    COALESCE(SUM(m.quantidade), 0)::bigint  AS total_vendido,
	    COALESCE(SUM(` + saleProfit + `), 0)  AS lucro_total
	FROM produtos p
	LEFT JOIN movimentacoes m ON m.produto_id = p.id AND m.tipo = 'SAIDA'
	WHERE p.ativo
	GROUP BY p.id, p.nome, p.valor_compra, p.valor_venda
	ORDER BY p.nome`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProfitMargins: %w", err)
	}
	defer rows.Close()

	var results []repository.MarginItem
	for rows.Next() {
		var row repository.MarginItem
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.PurchasePrice, &row.SalePrice,
			&row.QuantitySold, &row.TotalProfit); err != nil {
			return nil, fmt.Errorf("analytics.GetProfitMargins scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetExpiringProducts produtos ativos com validade até hoje + days (vencidos inclusive).
func (r *AnalyticsRepo) GetExpiringProducts(ctx context.Context, days int) ([]repository.ExpiringItem, error) {
	const query = `
	SELECT id::text, nome, data_validade, quantidade, valor_venda, (data_validade - CURRENT_DATE) AS dias_para_vencer
	FROM produtos
	WHERE ativo
	  AND data_validade IS NOT NULL
	  AND data_validade <= CURRENT_DATE + $1::int
	ORDER BY data_validade, nome`

	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetExpiringProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ExpiringItem
	for rows.Next() {
		var row repository.ExpiringItem
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.ExpiryDate, &row.Quantity,
			&row.SalePrice, &row.DaysToExpire); err != nil {
			return nil, fmt.Errorf("analytics.GetExpiringProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInactiveProducts produtos ativos sem movimentação há mais de `days` dias.
// Sem nenhuma movimentação conta a partir do cadastro.
func (r *AnalyticsRepo) GetInactiveProducts(ctx context.Context, days int) ([]repository.InactiveItem, error) {
	const query = `
	SELECT id, nome, quantidade, criado_em, valor_venda, dias_sem_movimento
	FROM (
	    SELECT
	        p.id::text AS id, p.nome, p.quantidade, p.criado_em, p.valor_venda,
	        (CURRENT_DATE - COALESCE(MAX(m.data), p.criado_em)::date) AS dias_sem_movimento
	    FROM produtos p
	    LEFT JOIN movimentacoes m ON m.produto_id = p.id
	    WHERE p.ativo
	    GROUP BY p.id
	) x
	WHERE dias_sem_movimento > $1
	ORDER BY dias_sem_movimento DESC, nome`

	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetInactiveProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.InactiveItem
	for rows.Next() {
		var row repository.InactiveItem
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.CreatedAt,
			&row.SalePrice, &row.DaysIdle); err != nil {
			return nil, fmt.Errorf("analytics.GetInactiveProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlySummary vendas por mês (YYYY-MM) dos últimos `months` meses, mais recente primeiro.
func (r *AnalyticsRepo) GetMonthlySummary(ctx context.Context, months int) ([]repository.MonthlySummary, error) {
	query := `
	SELECT
	    to_char(m.data, 'YYYY-MM')       AS mes,
	    SUM(m.quantidade)::bigint          AS qtd_vendida,
	    SUM(` + saleRevenue + `)         AS faturamento,
	    SUM(` + saleProfit + `)          AS lucro
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	WHERE m.tipo = 'SAIDA'
	  AND m.data >= date_trunc('month', now()) - make_interval(months => $1::int - 1)
	GROUP BY mes
	ORDER BY mes DESC`

	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlySummary: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySummary
	for rows.Next() {
		var row repository.MonthlySummary
		if err := rows.Scan(&row.Month, &row.QuantitySold, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlySummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetCashFlow abertura/fechamento de cada caixa no período e as vendas registradas no mesmo dia.
func (r *AnalyticsRepo) GetCashFlow(ctx context.Context, start, end time.Time) ([]repository.CashFlowDay, error) {
	query := `
	SELECT
	    c.data,
	    c.valor_abertura,
	    c.valor_fechamento,
	    COALESCE(SUM(` + saleRevenue + `), 0) AS vendas_total
	FROM caixas c
	LEFT JOIN movimentacoes m ON m.data::date = c.data AND m.tipo = 'SAIDA'
	LEFT JOIN produtos p      ON p.id = m.produto_id
	WHERE c.data >= $1::date AND c.data < $2::date
	GROUP BY c.id, c.data, c.valor_abertura, c.valor_fechamento
	ORDER BY c.data DESC`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCashFlow: %w", err)
	}
	defer rows.Close()

	var results []repository.CashFlowDay
	for rows.Next() {
		var row repository.CashFlowDay
		if err := rows.Scan(&row.Date, &row.OpeningAmount, &row.ClosingAmount, &row.Sales); err != nil {
			return nil, fmt.Errorf("analytics.GetCashFlow scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTotals contagens gerais de produtos ativos e vendas.
func (r *AnalyticsRepo) GetTotals(ctx context.Context) (*repository.Totals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM produtos WHERE ativo)::int,
	    (SELECT COALESCE(SUM(quantidade), 0) FROM produtos WHERE ativo)::bigint,
	    (SELECT COUNT(*) FROM movimentacoes WHERE tipo = 'SAIDA')::int,
	    (SELECT COUNT(DISTINCT data::date) FROM movimentacoes WHERE tipo = 'SAIDA')::int`

	var t repository.Totals
	if err := r.q.QueryRow(ctx, query).Scan(&t.Products, &t.Items, &t.Sales, &t.DaysWithSales); err != nil {
		return nil, fmt.Errorf("analytics.GetTotals: %w", err)
	}
	return &t, nil
}

// GetFiadosSummary contagem e total dos fiados em aberto e pagos.
func (r *AnalyticsRepo) GetFiadosSummary(ctx context.Context) (*repository.FiadosSummary, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE NOT pago)::int,
	    COALESCE(SUM(valor_total) FILTER (WHERE NOT pago), 0),
	    COUNT(*) FILTER (WHERE pago)::int,
	    COALESCE(SUM(valor_total) FILTER (WHERE pago), 0)
	FROM fiados`

	var s repository.FiadosSummary
	if err := r.q.QueryRow(ctx, query).Scan(&s.OpenCount, &s.OpenTotal, &s.PaidCount, &s.PaidTotal); err != nil {
		return nil, fmt.Errorf("analytics.GetFiadosSummary: %w", err)
	}
	return &s, nil
}

// GetPrejuizosSummary quantidade de registros e valor total das perdas.
func (r *AnalyticsRepo) GetPrejuizosSummary(ctx context.Context) (*repository.PrejuizosSummary, error) {
	var s repository.PrejuizosSummary
	err := r.q.QueryRow(ctx, `SELECT COUNT(*)::int, COALESCE(SUM(valor_total), 0) FROM prejuizos`).
		Scan(&s.Count, &s.Total)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetPrejuizosSummary: %w", err)
	}
	return &s, nil
}

// GetPrejuizosByReason perdas agrupadas por motivo, maior valor primeiro.
func (r *AnalyticsRepo) GetPrejuizosByReason(ctx context.Context, limit int) ([]repository.PrejuizoByReason, error) {
	const query = `
	SELECT motivo, COUNT(*)::int, SUM(valor_total) AS total
	FROM prejuizos
	GROUP BY motivo
	ORDER BY total DESC, motivo
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetPrejuizosByReason: %w", err)
	}
	defer rows.Close()

	var results []repository.PrejuizoByReason
	for rows.Next() {
		var row repository.PrejuizoByReason
		if err := rows.Scan(&row.Reason, &row.Count, &row.Total); err != nil {
			return nil, fmt.Errorf("analytics.GetPrejuizosByReason scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
