package goal_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"Bolso/internal/domain/goal"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
	"Bolso/internal/pkg"
)

func newGoal(target, current, allocation string) *goal.Goal {
	return &goal.Goal{
		Id:                pkg.GenerateULIDObject(),
		UserId:            pkg.GenerateULIDObject(),
		Name:              "Viagem",
		TargetAmount:      decimal.RequireFromString(target),
		CurrentAmount:     decimal.RequireFromString(current),
		MonthlyAllocation: decimal.RequireFromString(allocation),
		IsActive:          true,
	}
}

func TestNewProgress(t *testing.T) {
	progress := goal.NewProgress(newGoal("5000", "1200", "200"))

	if !progress.PercentComplete.Equal(decimal.RequireFromString("24")) {
		t.Errorf("PercentComplete = %s, esperado 24", progress.PercentComplete)
	}
	if got := progress.Remaining.Display(); got != "3800.00" {
		t.Errorf("Remaining = %s, esperado 3800.00", got)
	}
	if progress.MonthsRemaining == nil {
		t.Fatal("MonthsRemaining deveria ser computável")
	}
	if *progress.MonthsRemaining != 19 {
		t.Errorf("MonthsRemaining = %d, esperado 19", *progress.MonthsRemaining)
	}
}

func TestNewProgressGoalMet(t *testing.T) {
	progress := goal.NewProgress(newGoal("5000", "5000", "200"))

	if !progress.PercentComplete.Equal(decimal.RequireFromString("100")) {
		t.Errorf("PercentComplete = %s, esperado 100", progress.PercentComplete)
	}
	if got := progress.Remaining.Display(); got != "0.00" {
		t.Errorf("Remaining = %s, esperado 0.00", got)
	}
	if progress.MonthsRemaining == nil || *progress.MonthsRemaining != 0 {
		t.Errorf("MonthsRemaining = %v, esperado 0", progress.MonthsRemaining)
	}
}

func TestNewProgressOverfunded(t *testing.T) {
	// Acima do alvo: percentual passa de 100 e o restante fica negativo.
	progress := goal.NewProgress(newGoal("1000", "1500", "100"))

	if !progress.PercentComplete.Equal(decimal.RequireFromString("150")) {
		t.Errorf("PercentComplete = %s, esperado 150", progress.PercentComplete)
	}
	if got := progress.Remaining.Display(); got != "-500.00" {
		t.Errorf("Remaining = %s, esperado -500.00", got)
	}
	if progress.MonthsRemaining == nil || *progress.MonthsRemaining != 0 {
		t.Errorf("MonthsRemaining = %v, esperado 0", progress.MonthsRemaining)
	}
}

func TestNewProgressNoAllocation(t *testing.T) {
	progress := goal.NewProgress(newGoal("5000", "1200", "0"))

	if progress.MonthsRemaining != nil {
		t.Errorf("MonthsRemaining = %d, esperado nil sem aporte mensal", *progress.MonthsRemaining)
	}
}

func TestNewProgressCeilsMonths(t *testing.T) {
	// 3800 / 300 = 12.67 → 13 meses.
	progress := goal.NewProgress(newGoal("5000", "1200", "300"))

	if progress.MonthsRemaining == nil || *progress.MonthsRemaining != 13 {
		t.Errorf("MonthsRemaining = %v, esperado 13", progress.MonthsRemaining)
	}
}

func TestContribute(t *testing.T) {
	entity := newGoal("5000", "1200", "200")

	next, err := goal.Contribute(entity, money.MustParse("300"))
	if err != nil {
		t.Fatalf("Contribute retornou erro: %v", err)
	}

	if !next.CurrentAmount.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("CurrentAmount = %s, esperado 1500", next.CurrentAmount)
	}
	// A transição é pura: a meta original não muda.
	if !entity.CurrentAmount.Equal(decimal.RequireFromString("1200")) {
		t.Errorf("meta original mutada para %s", entity.CurrentAmount)
	}
}

func TestContributeRejectsNonPositive(t *testing.T) {
	entity := newGoal("5000", "1200", "200")

	_, err := goal.Contribute(entity, money.Zero())
	if err == nil {
		t.Fatal("Contribute deveria rejeitar aporte zero")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, veio %T", err)
	}
	if appErr.Code != appErrors.ErrInvalidAmount.Code {
		t.Errorf("Code = %s, esperado %s", appErr.Code, appErrors.ErrInvalidAmount.Code)
	}
}
