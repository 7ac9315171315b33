package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// FiadoRepository persistência das vendas fiado.
type FiadoRepository interface {
	Create(ctx context.Context, fiado *entity.Fiado) error
	GetByID(ctx context.Context, id string) (*entity.Fiado, error)
	// GetForUpdate busca direta com bloqueio de linha, usada no pagamento.
	GetForUpdate(ctx context.Context, id string) (*entity.Fiado, error)
	ListOpen(ctx context.Context) ([]*entity.Fiado, error)
	List(ctx context.Context) ([]*entity.Fiado, error)
	// MarkPaid marca como pago e vincula a movimentação. Só afeta fiados ainda não pagos;
	// devolve false quando nenhuma linha foi alterada.
	MarkPaid(ctx context.Context, id, movementID string, paidAt time.Time) (bool, error)
}
