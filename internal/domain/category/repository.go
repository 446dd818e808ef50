package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	CreateBatch(ctx context.Context, categories []*Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*Category, error)
	GetByUserID(ctx context.Context, userID ulid.ULID) ([]*Category, error)
}
