package transaction

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"Bolso/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*Transaction, error)
	// GetByUserAndPeriod retorna as transações do usuário com data em
	// [from, to), mais recentes primeiro.
	GetByUserAndPeriod(ctx context.Context, userID ulid.ULID, from, to time.Time, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
}
