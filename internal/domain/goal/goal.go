package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Goal é uma meta de poupança. CurrentAmount pode ultrapassar TargetAmount:
// poupar além da meta é permitido e não é truncado. A "exclusão" de uma meta
// é a transição IsActive=false; metas inativas ficam fora de toda agregação.
type Goal struct {
	Id                ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId            ulid.ULID       `gorm:"type:varchar(26);not null;index:idx_goals_user_active,priority:1" json:"userId"`
	Name              string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"currentAmount"`
	MonthlyAllocation decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthlyAllocation"`
	Deadline          *time.Time      `gorm:"type:date" json:"deadline"`
	IsActive          bool            `gorm:"not null;default:true;index:idx_goals_user_active,priority:2" json:"isActive"`
	CreatedAt         time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}
