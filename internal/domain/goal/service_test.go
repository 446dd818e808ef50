package goal_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"Bolso/internal/domain/goal"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
	"Bolso/internal/pkg"
)

type fakeGoalRepository struct {
	createFn         func(ctx context.Context, g *goal.Goal) error
	updateFn         func(ctx context.Context, g *goal.Goal) error
	getByIDFn        func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error)
	getActiveFn      func(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error)
	deactivateFn     func(ctx context.Context, id ulid.ULID) error
	incrementFn      func(ctx context.Context, id ulid.ULID, delta decimal.Decimal) error
	incrementCalls   int
	deactivateCalls  int
}

func (f *fakeGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	if f.createFn != nil {
		return f.createFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) GetActiveByUser(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error) {
	if f.getActiveFn != nil {
		return f.getActiveFn(ctx, userID, pagination)
	}
	return nil, 0, nil
}

func (f *fakeGoalRepository) Deactivate(ctx context.Context, id ulid.ULID) error {
	f.deactivateCalls++
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

func (f *fakeGoalRepository) IncrementCurrentAmount(ctx context.Context, id ulid.ULID, delta decimal.Decimal) error {
	f.incrementCalls++
	if f.incrementFn != nil {
		return f.incrementFn(ctx, id, delta)
	}
	return nil
}

func TestCreateGoal(t *testing.T) {
	var created *goal.Goal
	repo := &fakeGoalRepository{
		createFn: func(ctx context.Context, g *goal.Goal) error {
			created = g
			return nil
		},
	}
	service := goal.NewService(repo)

	entity, err := service.CreateGoal(context.Background(), &goal.CreateRequest{
		UserId:            pkg.GenerateULIDObject(),
		Name:              "Reserva",
		TargetAmount:      money.MustParse("10000"),
		MonthlyAllocation: money.MustParse("500"),
	})
	if err != nil {
		t.Fatalf("CreateGoal retornou erro: %v", err)
	}

	if created == nil {
		t.Fatal("meta não foi persistida")
	}
	if !entity.IsActive {
		t.Error("meta nova deveria nascer ativa")
	}
	if !entity.CurrentAmount.IsZero() {
		t.Errorf("CurrentAmount = %s, esperado zero", entity.CurrentAmount)
	}
}

func TestCreateGoalRejectsNonPositiveTarget(t *testing.T) {
	service := goal.NewService(&fakeGoalRepository{})

	_, err := service.CreateGoal(context.Background(), &goal.CreateRequest{
		UserId:       pkg.GenerateULIDObject(),
		Name:         "Reserva",
		TargetAmount: money.Zero(),
	})
	if err == nil {
		t.Fatal("CreateGoal deveria rejeitar alvo zero")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, veio %T", err)
	}
	if appErr.Code != appErrors.ErrInvalidAmount.Code {
		t.Errorf("Code = %s, esperado %s", appErr.Code, appErrors.ErrInvalidAmount.Code)
	}
}

func TestContributeUsesAtomicIncrement(t *testing.T) {
	entity := newGoal("5000", "1200", "200")

	var incremented decimal.Decimal
	repo := &fakeGoalRepository{
		getByIDFn: func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
			return entity, nil
		},
		incrementFn: func(ctx context.Context, id ulid.ULID, delta decimal.Decimal) error {
			incremented = delta
			return nil
		},
	}
	service := goal.NewService(repo)

	_, err := service.Contribute(context.Background(), entity.Id, entity.UserId, money.MustParse("300"))
	if err != nil {
		t.Fatalf("Contribute retornou erro: %v", err)
	}

	if repo.incrementCalls != 1 {
		t.Fatalf("incremento atômico chamado %d vezes, esperado 1", repo.incrementCalls)
	}
	if !incremented.Equal(decimal.RequireFromString("300")) {
		t.Errorf("delta = %s, esperado 300", incremented)
	}
}

func TestContributeRejectsInactiveGoal(t *testing.T) {
	entity := newGoal("5000", "1200", "200")
	entity.IsActive = false

	repo := &fakeGoalRepository{
		getByIDFn: func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
			return entity, nil
		},
	}
	service := goal.NewService(repo)

	_, err := service.Contribute(context.Background(), entity.Id, entity.UserId, money.MustParse("300"))
	if err == nil {
		t.Fatal("Contribute deveria rejeitar meta inativa")
	}
	if repo.incrementCalls != 0 {
		t.Errorf("incremento chamado %d vezes para meta inativa", repo.incrementCalls)
	}
}

func TestContributeRejectsInvalidAmountBeforeWrite(t *testing.T) {
	entity := newGoal("5000", "1200", "200")
	repo := &fakeGoalRepository{
		getByIDFn: func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
			return entity, nil
		},
	}
	service := goal.NewService(repo)

	_, err := service.Contribute(context.Background(), entity.Id, entity.UserId, money.Zero())
	if err == nil {
		t.Fatal("Contribute deveria rejeitar aporte zero")
	}
	if repo.incrementCalls != 0 {
		t.Errorf("incremento chamado %d vezes para aporte inválido", repo.incrementCalls)
	}
}

func TestDeactivateGoal(t *testing.T) {
	entity := newGoal("5000", "1200", "200")
	repo := &fakeGoalRepository{
		getByIDFn: func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
			return entity, nil
		},
	}
	service := goal.NewService(repo)

	if err := service.DeactivateGoal(context.Background(), entity.Id, entity.UserId); err != nil {
		t.Fatalf("DeactivateGoal retornou erro: %v", err)
	}
	if repo.deactivateCalls != 1 {
		t.Errorf("Deactivate chamado %d vezes, esperado 1", repo.deactivateCalls)
	}
}
