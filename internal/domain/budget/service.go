package budget

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"Bolso/internal/domain/category"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type Service struct {
	Repository         Repository
	CategoryRepository category.Repository
}

func NewService(repo Repository, categoryRepo category.Repository) *Service {
	return &Service{
		Repository:         repo,
		CategoryRepository: categoryRepo,
	}
}

type SetupRequest struct {
	UserId ulid.ULID
	Month  time.Time
	Input  SetupInput
}

// SetupBudget cria o orçamento do mês e semeia as seis categorias iniciais.
// Diferente do planejador, a escrita recusa configurações com déficit: é o
// espelho servidor do bloqueio que o formulário aplica no cliente.
func (s *Service) SetupBudget(ctx context.Context, req *SetupRequest) (*Budget, *SetupPlan, error) {
	plan, err := req.Input.Derive()
	if err != nil {
		return nil, nil, err
	}

	if plan.Remaining.IsNegative() {
		return nil, nil, appErrors.NewInvalidAmountError("income", "alocações excedem a renda do mês").
			WithDetails(map[string]interface{}{
				"deficit": plan.Remaining.Display(),
			})
	}

	month := MonthKey(req.Month)
	if existing, err := s.Repository.GetByUserAndMonth(ctx, req.UserId, month); err == nil && existing != nil {
		return nil, nil, appErrors.NewConflictError("orçamento para este mês")
	}

	now := time.Now()
	entity := &Budget{
		Id:                    pkg.GenerateULIDObject(),
		UserId:                req.UserId,
		Month:                 month,
		Income:                req.Input.Income.Decimal(),
		SavingsPercentage:     req.Input.SavingsPercentage,
		GroceriesAllocation:   req.Input.GroceriesAllocation.Decimal(),
		ContingencyPercentage: req.Input.ContingencyPercentage,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, nil, err
	}

	seeds := make([]*category.Category, 0, len(plan.SeedCategories))
	for _, seed := range plan.SeedCategories {
		seeds = append(seeds, &category.Category{
			Id:              pkg.GenerateULIDObject(),
			UserId:          req.UserId,
			Name:            seed.Name,
			AllocatedAmount: seed.Allocation.Decimal(),
			Color:           seed.Color,
			IsSystem:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	if err := s.CategoryRepository.CreateBatch(ctx, seeds); err != nil {
		return nil, nil, err
	}

	return entity, plan, nil
}

// UpdateBudget regrava as entradas do orçamento do mês indicado. A escrita
// é condicional ao updated_at lido; se outra atualização chegar antes, o
// repositório devolve conflito de concorrência e o chamador repete.
func (s *Service) UpdateBudget(ctx context.Context, userID ulid.ULID, at time.Time, input SetupInput) (*Budget, error) {
	plan, err := input.Derive()
	if err != nil {
		return nil, err
	}
	if plan.Remaining.IsNegative() {
		return nil, appErrors.NewInvalidAmountError("income", "alocações excedem a renda do mês").
			WithDetails(map[string]interface{}{
				"deficit": plan.Remaining.Display(),
			})
	}

	entity, err := s.Repository.GetByUserAndMonth(ctx, userID, MonthKey(at))
	if err != nil {
		return nil, err
	}

	entity.Income = input.Income.Decimal()
	entity.SavingsPercentage = input.SavingsPercentage
	entity.GroceriesAllocation = input.GroceriesAllocation.Decimal()
	entity.ContingencyPercentage = input.ContingencyPercentage

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// PreviewSetup roda apenas o planejador: valida as entradas e devolve as
// alocações derivadas, incluindo um restante possivelmente negativo. Nunca
// bloqueia por déficit.
func (s *Service) PreviewSetup(input SetupInput) (*SetupPlan, error) {
	return input.Derive()
}

// GetBudgetForMonth busca o orçamento do mês do instante informado.
func (s *Service) GetBudgetForMonth(ctx context.Context, userID ulid.ULID, at time.Time) (*Budget, error) {
	entity, err := s.Repository.GetByUserAndMonth(ctx, userID, MonthKey(at))
	if err != nil {
		return nil, err
	}
	return entity, nil
}
