package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

func newBudget(income string) *budget.Budget {
	return &budget.Budget{
		Id:                    pkg.GenerateULIDObject(),
		UserId:                pkg.GenerateULIDObject(),
		Month:                 budget.MonthKey(time.Now()),
		Income:                decimal.RequireFromString(income),
		SavingsPercentage:     decimal.RequireFromString("10"),
		GroceriesAllocation:   decimal.RequireFromString("500"),
		ContingencyPercentage: decimal.RequireFromString("10"),
	}
}

func newGoal(target, current string, active bool) *goal.Goal {
	return &goal.Goal{
		Id:            pkg.GenerateULIDObject(),
		Name:          "meta",
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		IsActive:      active,
	}
}

func TestSummaryTotals(t *testing.T) {
	groceries := newCategory("Groceries", "500")
	transactions := []*transaction.Transaction{
		newTransaction(&groceries.Id, "200"),
		newTransaction(nil, "350"),
	}

	summary := budget.NewSummary(newBudget("5000"), []*category.Category{groceries}, transactions, nil)

	if got := summary.Income().Display(); got != "5000.00" {
		t.Errorf("Income = %s, esperado 5000.00", got)
	}
	if got := summary.TotalSpent().Display(); got != "550.00" {
		t.Errorf("TotalSpent = %s, esperado 550.00", got)
	}
	if got := summary.TotalAllocated().Display(); got != "500.00" {
		t.Errorf("TotalAllocated = %s, esperado 500.00", got)
	}
	if got := summary.RemainingBudget().Display(); got != "4450.00" {
		t.Errorf("RemainingBudget = %s, esperado 4450.00", got)
	}
	if got := summary.SavingsTarget().Display(); got != "500.00" {
		t.Errorf("SavingsTarget = %s, esperado 500.00", got)
	}
}

func TestSummaryNegativeRemaining(t *testing.T) {
	transactions := []*transaction.Transaction{
		newTransaction(nil, "1500"),
	}

	summary := budget.NewSummary(newBudget("1000"), nil, transactions, nil)

	remaining := summary.RemainingBudget()
	if !remaining.IsNegative() {
		t.Fatalf("RemainingBudget = %s, esperado negativo", remaining.Display())
	}
	if got := remaining.Display(); got != "-500.00" {
		t.Errorf("RemainingBudget = %s, esperado -500.00", got)
	}
}

func TestSummarySpentRatio(t *testing.T) {
	transactions := []*transaction.Transaction{
		newTransaction(nil, "2500"),
	}

	summary := budget.NewSummary(newBudget("5000"), nil, transactions, nil)

	ratio, err := summary.SpentRatio()
	if err != nil {
		t.Fatalf("SpentRatio retornou erro: %v", err)
	}
	if !ratio.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("SpentRatio = %s, esperado 0.5", ratio)
	}
}

func TestSummarySpentRatioZeroIncome(t *testing.T) {
	transactions := []*transaction.Transaction{
		newTransaction(nil, "100"),
	}

	summary := budget.NewSummary(newBudget("0"), nil, transactions, nil)

	_, err := summary.SpentRatio()
	if err == nil {
		t.Fatal("SpentRatio deveria falhar com renda zero")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, veio %T", err)
	}
	if appErr.Code != appErrors.ErrNotApplicable.Code {
		t.Errorf("Code = %s, esperado %s", appErr.Code, appErrors.ErrNotApplicable.Code)
	}
}

func TestSummaryGoalsTotalsActiveOnly(t *testing.T) {
	goals := []*goal.Goal{
		newGoal("10000", "2400", true),
		newGoal("5000", "1000", true),
		newGoal("9999", "9999", false),
	}

	summary := budget.NewSummary(newBudget("5000"), nil, nil, goals)

	target, current := summary.GoalsTotals()
	if got := target.Display(); got != "15000.00" {
		t.Errorf("target = %s, esperado 15000.00", got)
	}
	if got := current.Display(); got != "3400.00" {
		t.Errorf("current = %s, esperado 3400.00", got)
	}
}

func TestSummaryTotalSpentMatchesSpending(t *testing.T) {
	// Invariante: total do mês = soma por categoria + sem categoria.
	groceries := newCategory("Groceries", "500")
	bills := newCategory("Bills", "0")
	unknown := pkg.GenerateULIDObject()

	transactions := []*transaction.Transaction{
		newTransaction(&groceries.Id, "120.55"),
		newTransaction(&bills.Id, "80.45"),
		newTransaction(&unknown, "10"),
		newTransaction(nil, "39"),
	}

	categories := []*category.Category{groceries, bills}
	summary := budget.NewSummary(newBudget("5000"), categories, transactions, nil)
	spending := summary.Spending()

	sum := spending.Uncategorized()
	for id := range spending.SpendByCategory() {
		sum = sum.Add(spending.Spent(id))
	}

	if !sum.Equal(summary.TotalSpent()) {
		t.Errorf("soma das partes = %s, total = %s", sum.Display(), summary.TotalSpent().Display())
	}
}
