package budget

import (
	"github.com/shopspring/decimal"

	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
)

// SetupInput são os parâmetros da configuração inicial de um orçamento
// mensal.
type SetupInput struct {
	Income                money.Money
	SavingsPercentage     decimal.Decimal
	GroceriesAllocation   money.Money
	ContingencyPercentage decimal.Decimal
}

// SeedCategory é uma categoria derivada da configuração, marcada como
// semeada pelo sistema.
type SeedCategory struct {
	Name       string
	Allocation money.Money
	Color      string
}

// SetupPlan é o resultado da derivação. Remaining pode ser negativo: o
// planejador expõe o déficit mas não bloqueia; avisar ou impedir é decisão
// de quem chama.
type SetupPlan struct {
	SavingsAmount     money.Money
	ContingencyAmount money.Money
	Remaining         money.Money
	SeedCategories    []SeedCategory
}

func (in SetupInput) Validate() error {
	if !in.Income.IsPositive() {
		return appErrors.NewInvalidAmountError("income", "renda deve ser maior que zero")
	}
	if !money.ValidPercent(in.SavingsPercentage) {
		return appErrors.NewInvalidAmountError("savings_percentage", "percentual de poupança deve estar entre 0 e 100")
	}
	if in.GroceriesAllocation.IsNegative() {
		return appErrors.NewInvalidAmountError("groceries_allocation", "orçamento de mercado não pode ser negativo")
	}
	if !money.ValidPercent(in.ContingencyPercentage) {
		return appErrors.NewInvalidAmountError("contingency_percentage", "percentual de contingência deve estar entre 0 e 100")
	}
	return nil
}

// Derive calcula as alocações iniciais e o conjunto fixo e ordenado de seis
// categorias semeadas.
func (in SetupInput) Derive() (*SetupPlan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	savings := in.Income.MulPercent(in.SavingsPercentage)
	contingency := in.Income.MulPercent(in.ContingencyPercentage)
	allocated := money.Sum(savings, in.GroceriesAllocation, contingency)
	remaining := in.Income.Sub(allocated)

	return &SetupPlan{
		SavingsAmount:     savings,
		ContingencyAmount: contingency,
		Remaining:         remaining,
		SeedCategories: []SeedCategory{
			{Name: "Savings", Allocation: savings, Color: "#10b981"},
			{Name: "Groceries", Allocation: in.GroceriesAllocation, Color: "#f59e0b"},
			{Name: "Bills", Allocation: money.Zero(), Color: "#ef4444"},
			{Name: "Transport", Allocation: money.Zero(), Color: "#3b82f6"},
			{Name: "Entertainment", Allocation: money.Zero(), Color: "#8b5cf6"},
			{Name: "Contingency", Allocation: contingency, Color: "#ec4899"},
		},
	}, nil
}
