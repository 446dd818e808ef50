package contracts

import (
	"github.com/shopspring/decimal"

	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/dashboard"
	"Bolso/internal/money"
)

// Valores monetários chegam como strings JSON ("5000.00") e são validados
// no unmarshal; percentuais chegam como números decimais.
type BudgetSetupRequest struct {
	Month                 string          `json:"month" binding:"omitempty,datetime=2006-01"`
	Income                money.Money     `json:"income"`
	SavingsPercentage     decimal.Decimal `json:"savings_percentage"`
	GroceriesAllocation   money.Money     `json:"groceries_allocation"`
	ContingencyPercentage decimal.Decimal `json:"contingency_percentage"`
}

type BudgetUpdateRequest struct {
	Income                money.Money     `json:"income"`
	SavingsPercentage     decimal.Decimal `json:"savings_percentage"`
	GroceriesAllocation   money.Money     `json:"groceries_allocation"`
	ContingencyPercentage decimal.Decimal `json:"contingency_percentage"`
}

type BudgetSetupResponse struct {
	Message string            `json:"message"`
	Budget  *budget.Budget    `json:"budget"`
	Plan    *budget.SetupPlan `json:"plan"`
}

type BudgetPreviewResponse struct {
	Plan *budget.SetupPlan `json:"plan"`
}

type BudgetResponse struct {
	Budget *budget.Budget `json:"budget"`
}

type BudgetSummaryResponse struct {
	Summary *dashboard.SummaryFigures `json:"summary"`
}
