package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	appErrors "Bolso/internal/errors"
	"Bolso/internal/money"
)

var oneHundred = decimal.NewFromInt(100)

// Progress é a visão derivada de uma meta. PercentComplete não é limitado a
// 100: metas poupadas além do alvo reportam mais. Remaining é o valor bruto
// target - current e pode ser negativo; quem exibe decide se trunca em zero.
type Progress struct {
	GoalId            ulid.ULID       `json:"goalId"`
	Name              string          `json:"name"`
	TargetAmount      money.Money     `json:"targetAmount"`
	CurrentAmount     money.Money     `json:"currentAmount"`
	Remaining         money.Money     `json:"remaining"`
	PercentComplete   decimal.Decimal `json:"percentComplete"`
	MonthsRemaining   *int            `json:"monthsRemaining"`
	MonthlyAllocation money.Money     `json:"monthlyAllocation"`
	Deadline          *time.Time      `json:"deadline"`
}

// NewProgress calcula a visão derivada. TargetAmount > 0 é invariante de
// entidade, então a divisão é sempre definida.
func NewProgress(g *Goal) *Progress {
	target := money.FromDecimal(g.TargetAmount)
	current := money.FromDecimal(g.CurrentAmount)
	remaining := target.Sub(current)

	percent := g.CurrentAmount.Div(g.TargetAmount).Mul(oneHundred)

	return &Progress{
		GoalId:            g.Id,
		Name:              g.Name,
		TargetAmount:      target,
		CurrentAmount:     current,
		Remaining:         remaining,
		PercentComplete:   percent,
		MonthsRemaining:   monthsRemaining(remaining, g.MonthlyAllocation),
		MonthlyAllocation: money.FromDecimal(g.MonthlyAllocation),
		Deadline:          g.Deadline,
	}
}

// monthsRemaining é ceil(max(0, remaining) / allocation). Sem aporte mensal
// a projeção não é computável e o resultado é nil, nunca infinito.
func monthsRemaining(remaining money.Money, allocation decimal.Decimal) *int {
	if !allocation.IsPositive() {
		return nil
	}

	effort := remaining.Decimal()
	if effort.IsNegative() {
		effort = decimal.Zero
	}

	months := int(effort.Div(allocation).Ceil().IntPart())
	return &months
}

// Contribute é uma transição pura de estado: devolve uma nova meta com o
// aporte somado, sem tocar na original. A atomicidade da persistência do
// incremento é responsabilidade do repositório.
func Contribute(g *Goal, amount money.Money) (*Goal, error) {
	if !amount.IsPositive() {
		return nil, appErrors.NewInvalidAmountError("amount", "aporte deve ser maior que zero")
	}

	next := *g
	next.CurrentAmount = g.CurrentAmount.Add(amount.Decimal())
	next.UpdatedAt = time.Now()
	return &next, nil
}
