package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"Bolso/internal/domain/category"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
	"Bolso/internal/pkg"
)

type Service struct {
	Repository      Repository
	CategoryService *category.Service
}

func NewService(repo Repository, categorySvc *category.Service) *Service {
	return &Service{
		Repository:      repo,
		CategoryService: categorySvc,
	}
}

type CreateRequest struct {
	UserId      ulid.ULID
	CategoryId  *ulid.ULID
	Amount      money.Money
	Description string
	Date        time.Time
}

type UpdateRequest struct {
	CategoryId    *ulid.ULID
	ClearCategory bool
	Amount        *money.Money
	Description   *string
	Date          *time.Time
}

func (s *Service) CreateTransaction(ctx context.Context, req *CreateRequest) (*Transaction, error) {
	if req.Date.IsZero() {
		return nil, appErrors.NewValidationError("date", "é obrigatória")
	}
	if err := s.checkCategory(ctx, req.CategoryId, req.UserId); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &Transaction{
		Id:          pkg.GenerateULIDObject(),
		UserId:      req.UserId,
		CategoryId:  req.CategoryId,
		Amount:      req.Amount.Decimal(),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, id, userID ulid.ULID, req *UpdateRequest) (*Transaction, error) {
	entity, err := s.GetTransactionByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.ClearCategory {
		entity.CategoryId = nil
	} else if req.CategoryId != nil {
		if err := s.checkCategory(ctx, req.CategoryId, userID); err != nil {
			return nil, err
		}
		entity.CategoryId = req.CategoryId
	}
	if req.Amount != nil {
		entity.Amount = req.Amount.Decimal()
	}
	if req.Description != nil {
		entity.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, appErrors.NewValidationError("date", "é obrigatória")
		}
		entity.Date = *req.Date
	}
	entity.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// DeleteTransaction remove de forma permanente. Transações não têm soft
// delete, diferente das metas.
func (s *Service) DeleteTransaction(ctx context.Context, id, userID ulid.ULID) error {
	if _, err := s.GetTransactionByID(ctx, id, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetTransactionByID(ctx context.Context, id, userID ulid.ULID) (*Transaction, error) {
	return s.Repository.GetByIDAndUser(ctx, id, userID)
}

// ListMonth retorna as transações do mês do instante informado.
func (s *Service) ListMonth(ctx context.Context, userID ulid.ULID, at time.Time, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	from := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.Repository.GetByUserAndPeriod(ctx, userID, from, to, pagination)
}

func (s *Service) checkCategory(ctx context.Context, categoryID *ulid.ULID, userID ulid.ULID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.CategoryService.GetCategoryByID(ctx, *categoryID, userID); err != nil {
		return appErrors.ErrCategoryNotFound.WithError(err)
	}
	return nil
}
