package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
	"Bolso/internal/pkg"
)

type fakeBudgetRepository struct {
	createFn            func(ctx context.Context, b *budget.Budget) error
	updateFn            func(ctx context.Context, b *budget.Budget) error
	getByUserAndMonthFn func(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error)
}

func (f *fakeBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}

func (f *fakeBudgetRepository) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error) {
	if f.getByUserAndMonthFn != nil {
		return f.getByUserAndMonthFn(ctx, userID, month)
	}
	return nil, appErrors.ErrBudgetNotFound
}

type fakeCategoryRepository struct {
	createFn      func(ctx context.Context, c *category.Category) error
	createBatchFn func(ctx context.Context, categories []*category.Category) error
}

func (f *fakeCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCategoryRepository) CreateBatch(ctx context.Context, categories []*category.Category) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, categories)
	}
	return nil
}

func (f *fakeCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	return nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return nil
}

func (f *fakeCategoryRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*category.Category, error) {
	return nil, appErrors.ErrCategoryNotFound
}

func (f *fakeCategoryRepository) GetByUserID(ctx context.Context, userID ulid.ULID) ([]*category.Category, error) {
	return nil, nil
}

func validSetupRequest() *budget.SetupRequest {
	return &budget.SetupRequest{
		UserId: pkg.GenerateULIDObject(),
		Month:  time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		Input: budget.SetupInput{
			Income:                money.MustParse("5000"),
			SavingsPercentage:     pct("10"),
			GroceriesAllocation:   money.MustParse("500"),
			ContingencyPercentage: pct("10"),
		},
	}
}

func TestSetupBudget(t *testing.T) {
	var createdBudget *budget.Budget
	var seeded []*category.Category

	repo := &fakeBudgetRepository{
		createFn: func(ctx context.Context, b *budget.Budget) error {
			createdBudget = b
			return nil
		},
	}
	categoryRepo := &fakeCategoryRepository{
		createBatchFn: func(ctx context.Context, categories []*category.Category) error {
			seeded = categories
			return nil
		},
	}

	service := budget.NewService(repo, categoryRepo)

	entity, plan, err := service.SetupBudget(context.Background(), validSetupRequest())
	if err != nil {
		t.Fatalf("SetupBudget retornou erro: %v", err)
	}

	if createdBudget == nil {
		t.Fatal("orçamento não foi persistido")
	}
	if !entity.Month.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Month = %v, esperado primeiro dia de março", entity.Month)
	}
	if got := plan.Remaining.Display(); got != "3500.00" {
		t.Errorf("Remaining = %s, esperado 3500.00", got)
	}

	if len(seeded) != 6 {
		t.Fatalf("categorias semeadas = %d, esperado 6", len(seeded))
	}
	for _, c := range seeded {
		if !c.IsSystem {
			t.Errorf("categoria %s deveria ser do sistema", c.Name)
		}
		if c.UserId != entity.UserId {
			t.Errorf("categoria %s semeada para outro usuário", c.Name)
		}
	}
}

func TestSetupBudgetRejectsDeficit(t *testing.T) {
	service := budget.NewService(&fakeBudgetRepository{}, &fakeCategoryRepository{})

	req := validSetupRequest()
	req.Input.Income = money.MustParse("1000")
	req.Input.GroceriesAllocation = money.MustParse("800")
	req.Input.SavingsPercentage = pct("50")

	_, _, err := service.SetupBudget(context.Background(), req)
	if err == nil {
		t.Fatal("SetupBudget deveria rejeitar déficit")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, veio %T", err)
	}
	if appErr.Code != appErrors.ErrInvalidAmount.Code {
		t.Errorf("Code = %s, esperado %s", appErr.Code, appErrors.ErrInvalidAmount.Code)
	}
	if _, ok := appErr.Details["deficit"]; !ok {
		t.Error("detalhes deveriam incluir o déficit")
	}
}

func TestSetupBudgetMonthConflict(t *testing.T) {
	repo := &fakeBudgetRepository{
		getByUserAndMonthFn: func(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error) {
			return &budget.Budget{Id: pkg.GenerateULIDObject()}, nil
		},
	}

	service := budget.NewService(repo, &fakeCategoryRepository{})

	_, _, err := service.SetupBudget(context.Background(), validSetupRequest())
	if err == nil {
		t.Fatal("SetupBudget deveria falhar para mês já configurado")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, veio %T", err)
	}
	if appErr.Code != "CONFLICT" {
		t.Errorf("Code = %s, esperado CONFLICT", appErr.Code)
	}
}

func TestPreviewSetupNeverBlocksDeficit(t *testing.T) {
	service := budget.NewService(&fakeBudgetRepository{}, &fakeCategoryRepository{})

	plan, err := service.PreviewSetup(budget.SetupInput{
		Income:                money.MustParse("1000"),
		SavingsPercentage:     pct("50"),
		GroceriesAllocation:   money.MustParse("800"),
		ContingencyPercentage: pct("20"),
	})
	if err != nil {
		t.Fatalf("PreviewSetup retornou erro: %v", err)
	}
	if !plan.Remaining.IsNegative() {
		t.Errorf("Remaining = %s, esperado negativo", plan.Remaining.Display())
	}
}

func TestUpdateBudgetConcurrencyConflict(t *testing.T) {
	existing := newBudget("5000")
	repo := &fakeBudgetRepository{
		getByUserAndMonthFn: func(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, b *budget.Budget) error {
			return appErrors.ErrConcurrencyConflict
		},
	}

	service := budget.NewService(repo, &fakeCategoryRepository{})

	_, err := service.UpdateBudget(context.Background(), existing.UserId, time.Now(), budget.SetupInput{
		Income:                money.MustParse("6000"),
		SavingsPercentage:     pct("10"),
		GroceriesAllocation:   money.MustParse("500"),
		ContingencyPercentage: pct("10"),
	})
	if err == nil {
		t.Fatal("UpdateBudget deveria propagar o conflito")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, veio %T", err)
	}
	if appErr.Code != appErrors.ErrConcurrencyConflict.Code {
		t.Errorf("Code = %s, esperado %s", appErr.Code, appErrors.ErrConcurrencyConflict.Code)
	}
}

func TestUpdateBudgetWritesZeroedAllocations(t *testing.T) {
	existing := newBudget("5000")
	existing.SavingsPercentage = pct("20")
	existing.ContingencyPercentage = pct("10")

	var updated *budget.Budget
	repo := &fakeBudgetRepository{
		getByUserAndMonthFn: func(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, b *budget.Budget) error {
			updated = b
			return nil
		},
	}

	service := budget.NewService(repo, &fakeCategoryRepository{})

	// Percentuais zerados são valores válidos e precisam sobrescrever os
	// anteriores, não ser tratados como campos ausentes.
	entity, err := service.UpdateBudget(context.Background(), existing.UserId, time.Now(), budget.SetupInput{
		Income:                money.MustParse("4000"),
		SavingsPercentage:     pct("0"),
		GroceriesAllocation:   money.MustParse("0"),
		ContingencyPercentage: pct("0"),
	})
	if err != nil {
		t.Fatalf("UpdateBudget retornou erro: %v", err)
	}
	if updated == nil {
		t.Fatal("orçamento não foi persistido")
	}
	if !updated.SavingsPercentage.IsZero() {
		t.Errorf("SavingsPercentage = %s, esperado 0", updated.SavingsPercentage.String())
	}
	if !updated.ContingencyPercentage.IsZero() {
		t.Errorf("ContingencyPercentage = %s, esperado 0", updated.ContingencyPercentage.String())
	}
	if !updated.GroceriesAllocation.IsZero() {
		t.Errorf("GroceriesAllocation = %s, esperado 0", updated.GroceriesAllocation.String())
	}
	if got := entity.Income.String(); got != "4000" {
		t.Errorf("Income = %s, esperado 4000", got)
	}
}
