package category

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

type CreateRequest struct {
	UserId          ulid.ULID
	Name            string
	AllocatedAmount decimal.Decimal
	Color           string
}

type UpdateRequest struct {
	Name            *string
	AllocatedAmount *decimal.Decimal
	Color           *string
}

func (s *Service) CreateCategory(ctx context.Context, req *CreateRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if req.AllocatedAmount.IsNegative() {
		return nil, appErrors.NewInvalidAmountError("allocated_amount", "valor alocado não pode ser negativo")
	}

	now := time.Now()
	entity := &Category{
		Id:              pkg.GenerateULIDObject(),
		UserId:          req.UserId,
		Name:            name,
		AllocatedAmount: req.AllocatedAmount,
		Color:           req.Color,
		IsSystem:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id, userID ulid.ULID, req *UpdateRequest) (*Category, error) {
	entity, err := s.GetCategoryByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
		entity.Name = name
	}
	if req.AllocatedAmount != nil {
		if req.AllocatedAmount.IsNegative() {
			return nil, appErrors.NewInvalidAmountError("allocated_amount", "valor alocado não pode ser negativo")
		}
		entity.AllocatedAmount = *req.AllocatedAmount
	}
	if req.Color != nil {
		entity.Color = *req.Color
	}
	entity.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// DeleteCategory remove uma categoria criada pelo usuário. Categorias
// semeadas pelo sistema não podem ser removidas. Transações que referenciam
// a categoria removida ficam sem categoria (a FK anula a referência).
func (s *Service) DeleteCategory(ctx context.Context, id, userID ulid.ULID) error {
	entity, err := s.GetCategoryByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if entity.IsSystem {
		return appErrors.NewValidationError("id", "categorias do sistema não podem ser removidas")
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetCategoryByID(ctx context.Context, id, userID ulid.ULID) (*Category, error) {
	entity, err := s.Repository.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) ListCategories(ctx context.Context, userID ulid.ULID) ([]*Category, error) {
	return s.Repository.GetByUserID(ctx, userID)
}
