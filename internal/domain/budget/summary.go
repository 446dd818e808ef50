package budget

import (
	"github.com/shopspring/decimal"

	"Bolso/internal/domain/category"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
)

// Summary agrega renda, gasto total, orçamento restante e alvo de poupança
// de um mês. Leitura pura sobre registros já escopados: nenhum método muta
// as entradas e duas chamadas sobre os mesmos registros dão o mesmo
// resultado.
type Summary struct {
	budget       *Budget
	categories   []*category.Category
	transactions []*transaction.Transaction
	goals        []*goal.Goal
}

func NewSummary(b *Budget, categories []*category.Category, transactions []*transaction.Transaction, goals []*goal.Goal) *Summary {
	return &Summary{
		budget:       b,
		categories:   categories,
		transactions: transactions,
		goals:        goals,
	}
}

func (s *Summary) Income() money.Money {
	return money.FromDecimal(s.budget.Income)
}

// TotalSpent soma todas as transações do mês, com ou sem categoria.
func (s *Summary) TotalSpent() money.Money {
	total := money.Zero()
	for _, t := range s.transactions {
		total = total.Add(money.FromDecimal(t.Amount))
	}
	return total
}

func (s *Summary) TotalAllocated() money.Money {
	total := money.Zero()
	for _, c := range s.categories {
		total = total.Add(money.FromDecimal(c.AllocatedAmount))
	}
	return total
}

// RemainingBudget é renda - gasto total e pode ser negativo, sinalizando
// estouro do mês. É uma figura do orçamento inteiro, independente do excesso
// por categoria: uma categoria pode estourar com o restante global ainda
// positivo, e vice-versa.
func (s *Summary) RemainingBudget() money.Money {
	return s.Income().Sub(s.TotalSpent())
}

func (s *Summary) SavingsTarget() money.Money {
	return s.Income().MulPercent(s.budget.SavingsPercentage)
}

// GoalsTotals soma alvo e acumulado apenas das metas ativas.
func (s *Summary) GoalsTotals() (target, current money.Money) {
	target = money.Zero()
	current = money.Zero()
	for _, g := range s.goals {
		if !g.IsActive {
			continue
		}
		target = target.Add(money.FromDecimal(g.TargetAmount))
		current = current.Add(money.FromDecimal(g.CurrentAmount))
	}
	return target, current
}

// SpentRatio é gasto total / renda. Com renda zero a razão é indefinida e o
// erro NOT_APPLICABLE é devolvido; nunca propaga infinito ou NaN para a
// exibição.
func (s *Summary) SpentRatio() (decimal.Decimal, error) {
	if s.budget.Income.IsZero() {
		return decimal.Zero, appErrors.ErrNotApplicable.WithDetails(map[string]interface{}{
			"reason": "renda do mês é zero",
		})
	}
	return s.TotalSpent().Decimal().Div(s.budget.Income), nil
}

// Spending constrói o calculador por categoria sobre os mesmos conjuntos.
func (s *Summary) Spending() *CategorySpending {
	return NewCategorySpending(s.categories, s.transactions)
}
