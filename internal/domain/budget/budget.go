package budget

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Budget é o orçamento de um mês-calendário. Existe no máximo um por
// (usuário, mês); meses seguintes exigem um novo registro. Month é sempre o
// primeiro dia do mês.
type Budget struct {
	Id                    ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId                ulid.ULID       `gorm:"type:varchar(26);not null;index:idx_budgets_user_month,unique,priority:1" json:"userId"`
	Month                 time.Time       `gorm:"type:date;not null;index:idx_budgets_user_month,unique,priority:2" json:"month"`
	Income                decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
	SavingsPercentage     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"savingsPercentage"`
	GroceriesAllocation   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"groceriesAllocation"`
	ContingencyPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"contingencyPercentage"`
	CreatedAt             time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "monthly_budgets"
}

// MonthKey normaliza um instante para o primeiro dia do mês em UTC, a chave
// canônica de orçamentos mensais.
func MonthKey(at time.Time) time.Time {
	return time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
}
