package inventory

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// RegisterMovementFromRequest adapta o request tipado (ENTRADA | SAIDA) para Entry ou Exit.
// Tipo desconhecido devolve ErrInvalidInput.
func (uc *StockUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*StockResult, error) {
	switch in.Type {
	case entity.MovementTypeEntry:
		return uc.Entry(ctx, EntryInput{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Note:      in.Note,
			UnitPrice: in.UnitPrice,
		})
	case entity.MovementTypeExit:
		return uc.Exit(ctx, ExitInput{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Note:      in.Note,
			IsCredit:  in.IsCredit,
			Customer:  in.Customer,
		})
	default:
		return nil, domain.ErrInvalidInput
	}
}
