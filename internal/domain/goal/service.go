package goal

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
	"Bolso/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

type CreateRequest struct {
	UserId            ulid.ULID
	Name              string
	TargetAmount      money.Money
	MonthlyAllocation money.Money
	Deadline          *time.Time
}

type UpdateRequest struct {
	Name              *string
	TargetAmount      *money.Money
	MonthlyAllocation *money.Money
	Deadline          *time.Time
	ClearDeadline     bool
}

func (s *Service) CreateGoal(ctx context.Context, req *CreateRequest) (*Goal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if !req.TargetAmount.IsPositive() {
		return nil, appErrors.NewInvalidAmountError("target_amount", "valor alvo deve ser maior que zero")
	}
	if req.MonthlyAllocation.IsNegative() {
		return nil, appErrors.NewInvalidAmountError("monthly_allocation", "aporte mensal não pode ser negativo")
	}

	now := time.Now()
	entity := &Goal{
		Id:                pkg.GenerateULIDObject(),
		UserId:            req.UserId,
		Name:              name,
		TargetAmount:      req.TargetAmount.Decimal(),
		CurrentAmount:     decimal.Zero,
		MonthlyAllocation: req.MonthlyAllocation.Decimal(),
		Deadline:          req.Deadline,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateGoal(ctx context.Context, id, userID ulid.ULID, req *UpdateRequest) (*Goal, error) {
	entity, err := s.GetGoalByID(ctx, id, userID)
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
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, appErrors.NewInvalidAmountError("target_amount", "valor alvo deve ser maior que zero")
		}
		entity.TargetAmount = req.TargetAmount.Decimal()
	}
	if req.MonthlyAllocation != nil {
		if req.MonthlyAllocation.IsNegative() {
			return nil, appErrors.NewInvalidAmountError("monthly_allocation", "aporte mensal não pode ser negativo")
		}
		entity.MonthlyAllocation = req.MonthlyAllocation.Decimal()
	}
	if req.ClearDeadline {
		entity.Deadline = nil
	} else if req.Deadline != nil {
		entity.Deadline = req.Deadline
	}
	entity.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// DeactivateGoal é a "exclusão" de metas: transição suave para
// IsActive=false, nunca remoção do registro.
func (s *Service) DeactivateGoal(ctx context.Context, id, userID ulid.ULID) error {
	if _, err := s.GetGoalByID(ctx, id, userID); err != nil {
		return err
	}
	return s.Repository.Deactivate(ctx, id)
}

// Contribute aplica um aporte. A transição é calculada de forma pura e a
// escrita é delegada ao incremento atômico do repositório, de modo que dois
// aportes concorrentes nunca percam atualização.
func (s *Service) Contribute(ctx context.Context, id, userID ulid.ULID, amount money.Money) (*Goal, error) {
	entity, err := s.GetGoalByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !entity.IsActive {
		return nil, appErrors.NewValidationError("id", "meta não está ativa")
	}

	if _, err := Contribute(entity, amount); err != nil {
		return nil, err
	}

	if err := s.Repository.IncrementCurrentAmount(ctx, id, amount.Decimal()); err != nil {
		return nil, err
	}

	return s.GetGoalByID(ctx, id, userID)
}

func (s *Service) GetProgress(ctx context.Context, id, userID ulid.ULID) (*Progress, error) {
	entity, err := s.GetGoalByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return NewProgress(entity), nil
}

func (s *Service) GetGoalByID(ctx context.Context, id, userID ulid.ULID) (*Goal, error) {
	return s.Repository.GetByIDAndUser(ctx, id, userID)
}

func (s *Service) ListActiveGoals(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error) {
	return s.Repository.GetActiveByUser(ctx, userID, pagination)
}
