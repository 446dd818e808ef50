package goal

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"Bolso/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*Goal, error)
	GetActiveByUser(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error)
	// Deactivate marca IsActive=false; a meta sai de todas as agregações
	// mas o registro permanece.
	Deactivate(ctx context.Context, id ulid.ULID) error
	// IncrementCurrentAmount soma delta a current_amount em uma única
	// escrita atômica no banco, fechando a corrida read-modify-write de
	// aportes concorrentes.
	IncrementCurrentAmount(ctx context.Context, id ulid.ULID, delta decimal.Decimal) error
}
