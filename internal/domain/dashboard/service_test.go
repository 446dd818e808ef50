package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/dashboard"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type fakeBudgetRepository struct {
	budget *budget.Budget
}

func (f *fakeBudgetRepository) Create(ctx context.Context, b *budget.Budget) error { return nil }
func (f *fakeBudgetRepository) Update(ctx context.Context, b *budget.Budget) error { return nil }

func (f *fakeBudgetRepository) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error) {
	if f.budget == nil {
		return nil, appErrors.ErrBudgetNotFound
	}
	return f.budget, nil
}

type fakeCategoryRepository struct {
	categories []*category.Category
}

func (f *fakeCategoryRepository) Create(ctx context.Context, c *category.Category) error { return nil }
func (f *fakeCategoryRepository) CreateBatch(ctx context.Context, categories []*category.Category) error {
	return nil
}
func (f *fakeCategoryRepository) Update(ctx context.Context, c *category.Category) error { return nil }
func (f *fakeCategoryRepository) Delete(ctx context.Context, id ulid.ULID) error         { return nil }

func (f *fakeCategoryRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*category.Category, error) {
	return nil, appErrors.ErrCategoryNotFound
}

func (f *fakeCategoryRepository) GetByUserID(ctx context.Context, userID ulid.ULID) ([]*category.Category, error) {
	return f.categories, nil
}

// fakeTransactionRepository aplica Offset/Limit exatamente como a
// implementação gorm: paginação nil devolve o conjunto inteiro.
type fakeTransactionRepository struct {
	transactions []*transaction.Transaction
}

func (f *fakeTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return nil
}
func (f *fakeTransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	return nil
}
func (f *fakeTransactionRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*transaction.Transaction, error) {
	return nil, appErrors.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) GetByUserAndPeriod(ctx context.Context, userID ulid.ULID, from, to time.Time, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	var inPeriod []*transaction.Transaction
	for _, t := range f.transactions {
		if !t.Date.Before(from) && t.Date.Before(to) {
			inPeriod = append(inPeriod, t)
		}
	}
	total := int64(len(inPeriod))
	if pagination != nil {
		start := pagination.Offset()
		if start > len(inPeriod) {
			start = len(inPeriod)
		}
		end := start + pagination.Limit
		if end > len(inPeriod) {
			end = len(inPeriod)
		}
		inPeriod = inPeriod[start:end]
	}
	return inPeriod, total, nil
}

type fakeGoalRepository struct {
	goals []*goal.Goal
}

func (f *fakeGoalRepository) Create(ctx context.Context, g *goal.Goal) error { return nil }
func (f *fakeGoalRepository) Update(ctx context.Context, g *goal.Goal) error { return nil }

func (f *fakeGoalRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) GetActiveByUser(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error) {
	return f.goals, int64(len(f.goals)), nil
}

func (f *fakeGoalRepository) Deactivate(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeGoalRepository) IncrementCurrentAmount(ctx context.Context, id ulid.ULID, delta decimal.Decimal) error {
	return nil
}

func monthOfTransactions(t *testing.T, userID ulid.ULID, count int, amount string) []*transaction.Transaction {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("valor inválido no cenário: %v", err)
	}

	transactions := make([]*transaction.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, &transaction.Transaction{
			Id:     pkg.GenerateULIDObject(),
			UserId: userID,
			Amount: value,
			Date:   time.Date(2024, time.March, 1+i%28, 0, 0, 0, 0, time.UTC),
		})
	}
	return transactions
}

func newService(budgets *fakeBudgetRepository, categories *fakeCategoryRepository, transactions *fakeTransactionRepository, goals *fakeGoalRepository) *dashboard.Service {
	return &dashboard.Service{
		BudgetRepository:      budgets,
		CategoryRepository:    categories,
		TransactionRepository: transactions,
		GoalRepository:        goals,
	}
}

func TestGetSummarySumsEntireMonth(t *testing.T) {
	userID := pkg.GenerateULIDObject()
	at := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	budgets := &fakeBudgetRepository{budget: &budget.Budget{
		Id:     pkg.GenerateULIDObject(),
		UserId: userID,
		Month:  budget.MonthKey(at),
		Income: decimal.NewFromInt(5000),
	}}
	// 150 transações: o total do mês não pode parar na primeira página.
	transactions := &fakeTransactionRepository{
		transactions: monthOfTransactions(t, userID, 150, "10.00"),
	}

	svc := newService(budgets, &fakeCategoryRepository{}, transactions, &fakeGoalRepository{})

	figures, err := svc.GetSummary(context.Background(), userID, at)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if figures.TotalSpent.Display() != "1500.00" {
		t.Errorf("TotalSpent = %s, esperava 1500.00 (soma de todas as transações do mês)", figures.TotalSpent.Display())
	}
	if figures.RemainingBudget.Display() != "3500.00" {
		t.Errorf("RemainingBudget = %s, esperava 3500.00", figures.RemainingBudget.Display())
	}
	if figures.Uncategorized.Display() != "1500.00" {
		t.Errorf("Uncategorized = %s, esperava 1500.00", figures.Uncategorized.Display())
	}
	if figures.SpentRatio == nil {
		t.Fatal("SpentRatio nulo com renda positiva")
	}
	if !figures.SpentRatio.Equal(decimal.NewFromFloat(0.3)) {
		t.Errorf("SpentRatio = %s, esperava 0.3", figures.SpentRatio.String())
	}
}

func TestGetOverviewAggregatesAllButShowsRecentFive(t *testing.T) {
	userID := pkg.GenerateULIDObject()
	at := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	budgets := &fakeBudgetRepository{budget: &budget.Budget{
		Id:     pkg.GenerateULIDObject(),
		UserId: userID,
		Month:  budget.MonthKey(at),
		Income: decimal.NewFromInt(5000),
	}}
	transactions := &fakeTransactionRepository{
		transactions: monthOfTransactions(t, userID, 150, "10.00"),
	}

	svc := newService(budgets, &fakeCategoryRepository{}, transactions, &fakeGoalRepository{})

	overview, err := svc.GetOverview(context.Background(), userID, at)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if overview.Summary.TotalSpent.Display() != "1500.00" {
		t.Errorf("TotalSpent = %s, esperava 1500.00", overview.Summary.TotalSpent.Display())
	}
	if len(overview.RecentTransactions) != 5 {
		t.Errorf("RecentTransactions tem %d itens, esperava 5", len(overview.RecentTransactions))
	}
}

func TestGetOverviewCategoryBarsCoverAllTransactions(t *testing.T) {
	userID := pkg.GenerateULIDObject()
	at := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	categoryID := pkg.GenerateULIDObject()

	budgets := &fakeBudgetRepository{budget: &budget.Budget{
		Id:     pkg.GenerateULIDObject(),
		UserId: userID,
		Month:  budget.MonthKey(at),
		Income: decimal.NewFromInt(5000),
	}}
	categories := &fakeCategoryRepository{categories: []*category.Category{{
		Id:              categoryID,
		UserId:          userID,
		Name:            "Mercado",
		AllocatedAmount: decimal.NewFromInt(1000),
	}}}

	monthTransactions := monthOfTransactions(t, userID, 120, "10.00")
	for _, tx := range monthTransactions {
		id := categoryID
		tx.CategoryId = &id
	}
	transactions := &fakeTransactionRepository{transactions: monthTransactions}

	svc := newService(budgets, categories, transactions, &fakeGoalRepository{})

	overview, err := svc.GetOverview(context.Background(), userID, at)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(overview.Categories) != 1 {
		t.Fatalf("esperava 1 categoria, obteve %d", len(overview.Categories))
	}
	item := overview.Categories[0]
	if item.Spent.Display() != "1200.00" {
		t.Errorf("Spent = %s, esperava 1200.00 (todas as 120 transações)", item.Spent.Display())
	}
	if !item.IsOverBudget {
		t.Error("categoria deveria estar estourada com 1200.00 gastos sobre 1000.00")
	}
	if item.Overage.Display() != "200.00" {
		t.Errorf("Overage = %s, esperava 200.00", item.Overage.Display())
	}
}

func TestGetSummaryWithoutBudget(t *testing.T) {
	userID := pkg.GenerateULIDObject()

	svc := newService(&fakeBudgetRepository{}, &fakeCategoryRepository{}, &fakeTransactionRepository{}, &fakeGoalRepository{})

	_, err := svc.GetSummary(context.Background(), userID, time.Now().UTC())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "BUDGET_NOT_FOUND" {
		t.Errorf("esperava BUDGET_NOT_FOUND, obteve %v", err)
	}
}
