package dashboard

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	"Bolso/internal/money"
)

const recentTransactionsLimit = 5

// Service monta a visão do mês: busca os registros escopados ao usuário
// pelos repositórios e roda os calculadores puros sobre eles. Nenhum cálculo
// acontece no banco; o banco só entrega os conjuntos.
type Service struct {
	BudgetRepository      budget.Repository
	CategoryRepository    category.Repository
	TransactionRepository transaction.Repository
	GoalRepository        goal.Repository
}

type Overview struct {
	Summary            *SummaryFigures            `json:"summary"`
	Categories         []*CategoryBreakdownItem   `json:"categories"`
	Goals              []*goal.Progress           `json:"goals"`
	RecentTransactions []*transaction.Transaction `json:"recentTransactions"`
}

type SummaryFigures struct {
	Income          money.Money      `json:"income"`
	TotalSpent      money.Money      `json:"totalSpent"`
	TotalAllocated  money.Money      `json:"totalAllocated"`
	RemainingBudget money.Money      `json:"remainingBudget"`
	SavingsTarget   money.Money      `json:"savingsTarget"`
	GoalsTarget     money.Money      `json:"goalsTarget"`
	GoalsCurrent    money.Money      `json:"goalsCurrent"`
	Uncategorized   money.Money      `json:"uncategorized"`
	// SpentRatio é omitido quando a renda é zero: "não aplicável" em vez
	// de infinito.
	SpentRatio *decimal.Decimal `json:"spentRatio,omitempty"`
}

type CategoryBreakdownItem struct {
	CategoryId      ulid.ULID   `json:"categoryId"`
	Name            string      `json:"name"`
	Color           string      `json:"color"`
	IsSystem        bool        `json:"isSystem"`
	Spent           money.Money `json:"spent"`
	AllocatedAmount money.Money `json:"allocatedAmount"`
	IsOverBudget    bool        `json:"isOverBudget"`
	Overage         money.Money `json:"overage"`
}

// GetOverview produz a visão completa do mês do instante informado.
func (s *Service) GetOverview(ctx context.Context, userID ulid.ULID, at time.Time) (*Overview, error) {
	b, categories, transactions, goals, err := s.fetchMonth(ctx, userID, at)
	if err != nil {
		return nil, err
	}

	summary := budget.NewSummary(b, categories, transactions, goals)
	spending := summary.Spending()

	items := make([]*CategoryBreakdownItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, &CategoryBreakdownItem{
			CategoryId:      c.Id,
			Name:            c.Name,
			Color:           c.Color,
			IsSystem:        c.IsSystem,
			Spent:           spending.Spent(c.Id),
			AllocatedAmount: money.FromDecimal(c.AllocatedAmount),
			IsOverBudget:    spending.IsOverBudget(c.Id),
			Overage:         spending.Overage(c.Id),
		})
	}

	progress := make([]*goal.Progress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, goal.NewProgress(g))
	}

	recent := transactions
	if len(recent) > recentTransactionsLimit {
		recent = recent[:recentTransactionsLimit]
	}

	return &Overview{
		Summary:            s.figures(summary, spending),
		Categories:         items,
		Goals:              progress,
		RecentTransactions: recent,
	}, nil
}

// GetSummary produz apenas as figuras agregadas do mês.
func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID, at time.Time) (*SummaryFigures, error) {
	b, categories, transactions, goals, err := s.fetchMonth(ctx, userID, at)
	if err != nil {
		return nil, err
	}

	summary := budget.NewSummary(b, categories, transactions, goals)
	return s.figures(summary, summary.Spending()), nil
}

func (s *Service) figures(summary *budget.Summary, spending *budget.CategorySpending) *SummaryFigures {
	goalsTarget, goalsCurrent := summary.GoalsTotals()

	figures := &SummaryFigures{
		Income:          summary.Income(),
		TotalSpent:      summary.TotalSpent(),
		TotalAllocated:  summary.TotalAllocated(),
		RemainingBudget: summary.RemainingBudget(),
		SavingsTarget:   summary.SavingsTarget(),
		GoalsTarget:     goalsTarget,
		GoalsCurrent:    goalsCurrent,
		Uncategorized:   spending.Uncategorized(),
	}

	if ratio, err := summary.SpentRatio(); err == nil {
		figures.SpentRatio = &ratio
	}

	return figures
}

func (s *Service) fetchMonth(ctx context.Context, userID ulid.ULID, at time.Time) (*budget.Budget, []*category.Category, []*transaction.Transaction, []*goal.Goal, error) {
	monthStart := budget.MonthKey(at)

	b, err := s.BudgetRepository.GetByUserAndMonth(ctx, userID, monthStart)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	categories, err := s.CategoryRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	// Paginação nil: os agregados do mês precisam de todas as transações,
	// não de uma página. O recorte dos recentes acontece depois, em memória.
	transactions, _, err := s.TransactionRepository.GetByUserAndPeriod(
		ctx, userID, monthStart, monthStart.AddDate(0, 1, 0), nil,
	)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	goals, _, err := s.GoalRepository.GetActiveByUser(ctx, userID, nil)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return b, categories, transactions, goals, nil
}
