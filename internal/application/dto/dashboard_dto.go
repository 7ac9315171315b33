package dto

// DashboardSummaryDTO resposta de GET /api/dashboard.
// Agrega os indicadores da tela inicial numa única chamada.
type DashboardSummaryDTO struct {
	Statistics  StatisticsDTO       `json:"statistics"`
	Stock       StockMetricsDTO     `json:"stock"`
	TopProducts []ProductSalesDTO   `json:"top_products"` // top 5 por quantidade
	Categories  []TagPerformanceDTO `json:"categories"`
	LowStock    []LowStockDTO       `json:"low_stock"`
	Expiring    []ExpiringDTO       `json:"expiring"` // próximos 30 dias
	Fiados      FiadosSummaryDTO    `json:"fiados"`
	Prejuizos   PrejuizosSummaryDTO `json:"prejuizos"`
	DateLabel   string              `json:"date_label"` // ex.: "Março 2026"
}
