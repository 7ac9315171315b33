package usecase

import (
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// Conversões repository → dto compartilhadas com o dashboard.

func ToProductSalesDTOs(rows []repository.ProductSales) []dto.ProductSalesDTO {
	out := make([]dto.ProductSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductSalesDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			QuantitySold: r.QuantitySold,
			Revenue:      r.Revenue.Round(2),
			Profit:       r.Profit.Round(2),
		})
	}
	return out
}

func ToTagPerformanceDTOs(rows []repository.TagPerformance) []dto.TagPerformanceDTO {
	out := make([]dto.TagPerformanceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TagPerformanceDTO{
			Tag:          r.Tag,
			Products:     r.Products,
			QuantitySold: r.QuantitySold,
			Revenue:      r.Revenue.Round(2),
			Profit:       r.Profit.Round(2),
		})
	}
	return out
}

func ToLowStockDTOs(rows []repository.LowStockItem) []dto.LowStockDTO {
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			MinStock:    r.MinStock,
			SalePrice:   r.SalePrice,
		})
	}
	return out
}

func ToExpiringDTOs(rows []repository.ExpiringItem) []dto.ExpiringDTO {
	out := make([]dto.ExpiringDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ExpiringDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			ExpiryDate:   r.ExpiryDate.Format(dto.DateLayout),
			Quantity:     r.Quantity,
			SalePrice:    r.SalePrice,
			DaysToExpire: r.DaysToExpire,
		})
	}
	return out
}

func ToStockMetricsDTO(v *repository.StockValue) dto.StockMetricsDTO {
	if v == nil {
		return dto.StockMetricsDTO{}
	}
	return dto.StockMetricsDTO{
		CostValue: v.CostValue.Round(2),
		SaleValue: v.SaleValue.Round(2),
		Products:  v.Products,
		Items:     v.Items,
	}
}

func ToStatisticsDTO(t *repository.Totals) dto.StatisticsDTO {
	if t == nil {
		return dto.StatisticsDTO{}
	}
	return dto.StatisticsDTO(*t)
}

func ToFiadosSummaryDTO(s *repository.FiadosSummary) dto.FiadosSummaryDTO {
	if s == nil {
		return dto.FiadosSummaryDTO{}
	}
	return dto.FiadosSummaryDTO{
		OpenCount: s.OpenCount,
		OpenTotal: s.OpenTotal.Round(2),
		PaidCount: s.PaidCount,
		PaidTotal: s.PaidTotal.Round(2),
	}
}

func ToPrejuizosSummaryDTO(s *repository.PrejuizosSummary) dto.PrejuizosSummaryDTO {
	if s == nil {
		return dto.PrejuizosSummaryDTO{}
	}
	return dto.PrejuizosSummaryDTO{Count: s.Count, Total: s.Total.Round(2)}
}
