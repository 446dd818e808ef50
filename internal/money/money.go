// Package money representa valores monetários com aritmética decimal exata.
// Nunca usa ponto flutuante binário: a soma dos valores exibidos é sempre
// igual ao total exibido.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	appErrors "Bolso/internal/errors"
)

var oneHundred = decimal.NewFromInt(100)

// Money é um valor monetário imutável sem moeda associada; o símbolo e o
// locale são responsabilidade da camada de apresentação.
type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{}
}

func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Parse aceita um decimal não negativo com no máximo dois dígitos
// fracionários significativos. Zeros à direita extras são permitidos
// ("12.300" equivale a "12.30"). Notação exponencial ("1e2") é recusada:
// o formato de entrada é o mesmo da exibição.
func Parse(input string) (Money, error) {
	if strings.ContainsAny(input, "eE") {
		return Money{}, appErrors.NewInvalidAmountError("amount", "notação exponencial não é aceita")
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return Money{}, appErrors.ErrInvalidAmount.WithError(err)
	}
	if d.IsNegative() {
		return Money{}, appErrors.NewInvalidAmountError("amount", "valor não pode ser negativo")
	}
	if !d.Equal(d.Round(2)) {
		return Money{}, appErrors.NewInvalidAmountError("amount", "valor deve ter no máximo duas casas decimais")
	}
	return Money{amount: d}, nil
}

// MustParse é um auxiliar para valores literais confiáveis; entra em pânico
// com entrada inválida.
func MustParse(input string) Money {
	m, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

// Sub pode produzir valor negativo; excesso e déficit são representados
// assim, sem truncamento.
func (m Money) Sub(o Money) Money {
	return Money{amount: m.amount.Sub(o.amount)}
}

// MulPercent calcula m * (p / 100) mantendo a precisão intermediária;
// o arredondamento acontece apenas na exibição.
func (m Money) MulPercent(p decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(p).Div(oneHundred)}
}

func (m Money) Cmp(o Money) int {
	return m.amount.Cmp(o.amount)
}

func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

func (m Money) GreaterThan(o Money) bool {
	return m.amount.GreaterThan(o.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Display renderiza com duas casas decimais fixas, sem símbolo de moeda.
func (m Money) Display() string {
	return m.amount.StringFixed(2)
}

func (m Money) String() string {
	return m.amount.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Display() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ValidPercent verifica a faixa 0..100 inclusiva.
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(oneHundred)
}

// Sum reduz os valores na ordem dada; por associatividade o resultado não
// depende da ordem.
func Sum(values ...Money) Money {
	total := Zero()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
