package budget

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// Create insere o orçamento do mês. Insere-se apenas um por
	// (usuário, mês); a violação do índice único vira conflito.
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month time.Time) (*Budget, error)
}
