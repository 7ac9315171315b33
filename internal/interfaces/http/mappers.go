package http

import (
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

func toFiadoResponse(f *entity.Fiado) *dto.FiadoResponse {
	if f == nil {
		return nil
	}
	return &dto.FiadoResponse{
		ID:         f.ID,
		ProductID:  f.ProductID,
		Quantity:   f.Quantity,
		UnitPrice:  f.UnitPrice,
		TotalPrice: f.TotalPrice,
		Customer:   f.Customer,
		Paid:       f.Paid,
		CreatedAt:  f.CreatedAt,
		PaidAt:     f.PaidAt,
		MovementID: f.MovementID,
	}
}

func toPrejuizoResponse(p *entity.Prejuizo) *dto.PrejuizoResponse {
	if p == nil {
		return nil
	}
	return &dto.PrejuizoResponse{
		ID:         p.ID,
		ProductID:  p.ProductID,
		Quantity:   p.Quantity,
		UnitPrice:  p.UnitPrice,
		TotalPrice: p.TotalPrice,
		Reason:     p.Reason,
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
	}
}

func toStockOperationResponse(r *inventory.StockResult) dto.StockOperationResponse {
	return dto.StockOperationResponse{
		Success:   true,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Movement:  toMovementResponse(r.Movement),
		Fiado:     toFiadoResponse(r.Fiado),
		Prejuizo:  toPrejuizoResponse(r.Prejuizo),
	}
}

func toCaixaResponse(c *entity.Caixa) dto.CaixaResponse {
	return dto.CaixaResponse{
		ID:            c.ID,
		Date:          c.Date.Format(dto.DateLayout),
		OpeningAmount: c.OpeningAmount,
		ClosingAmount: c.ClosingAmount,
		Status:        c.Status,
		OpenedAt:      c.OpenedAt,
		ClosedAt:      c.ClosedAt,
	}
}

// mapSlice converte uma lista de entidades com o mapper dado; nunca devolve nil.
func mapSlice[E any, D any](in []E, fn func(E) D) []D {
	out := make([]D, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}

func optionalCaixa(c *entity.Caixa) *dto.CaixaResponse {
	if c == nil {
		return nil
	}
	r := toCaixaResponse(c)
	return &r
}
