package budget

import (
	"github.com/oklog/ulid/v2"

	"Bolso/internal/domain/category"
	"Bolso/internal/domain/transaction"
	"Bolso/internal/money"
)

// CategorySpending mapeia transações a categorias e calcula gasto, alocação
// e excesso por categoria. O resultado depende apenas dos conjuntos de
// entrada; a ordem das transações não altera as somas.
type CategorySpending struct {
	spent         map[ulid.ULID]money.Money
	allocated     map[ulid.ULID]money.Money
	uncategorized money.Money
}

// NewCategorySpending recebe conjuntos já escopados ao usuário e ao mês pelo
// colaborador de persistência.
func NewCategorySpending(categories []*category.Category, transactions []*transaction.Transaction) *CategorySpending {
	s := &CategorySpending{
		spent:         make(map[ulid.ULID]money.Money, len(categories)),
		allocated:     make(map[ulid.ULID]money.Money, len(categories)),
		uncategorized: money.Zero(),
	}

	for _, c := range categories {
		s.spent[c.Id] = money.Zero()
		s.allocated[c.Id] = money.FromDecimal(c.AllocatedAmount)
	}

	for _, t := range transactions {
		amount := money.FromDecimal(t.Amount)
		if t.CategoryId == nil {
			s.uncategorized = s.uncategorized.Add(amount)
			continue
		}
		current, ok := s.spent[*t.CategoryId]
		if !ok {
			// Referência a categoria fora do conjunto informado conta
			// como sem categoria no total.
			s.uncategorized = s.uncategorized.Add(amount)
			continue
		}
		s.spent[*t.CategoryId] = current.Add(amount)
	}

	return s
}

// SpendByCategory devolve o gasto por categoria; categorias sem transação
// aparecem com zero.
func (s *CategorySpending) SpendByCategory() map[ulid.ULID]money.Money {
	out := make(map[ulid.ULID]money.Money, len(s.spent))
	for id, v := range s.spent {
		out[id] = v
	}
	return out
}

func (s *CategorySpending) Spent(categoryID ulid.ULID) money.Money {
	return s.spent[categoryID]
}

// Uncategorized é a soma das transações sem categoria: fora de toda soma por
// categoria, dentro do total do mês.
func (s *CategorySpending) Uncategorized() money.Money {
	return s.uncategorized
}

// IsOverBudget é estrito: gasto exatamente igual ao alocado não excede.
func (s *CategorySpending) IsOverBudget(categoryID ulid.ULID) bool {
	return s.spent[categoryID].GreaterThan(s.allocated[categoryID])
}

// Overage é max(0, gasto - alocado); nunca negativo, diferente do restante
// do orçamento inteiro que pode ser.
func (s *CategorySpending) Overage(categoryID ulid.ULID) money.Money {
	over := s.spent[categoryID].Sub(s.allocated[categoryID])
	if over.IsNegative() {
		return money.Zero()
	}
	return over
}
