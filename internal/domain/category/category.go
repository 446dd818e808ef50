package category

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Category é um alvo de planejamento por usuário; não é escopada por mês.
// AllocatedAmount é uma meta de planejamento, não um limite imposto na
// escrita de transações.
type Category struct {
	Id              ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId          ulid.ULID       `gorm:"type:varchar(26);not null;index:idx_categories_user_name,unique" json:"userId"`
	Name            string          `gorm:"type:varchar(100);not null;index:idx_categories_user_name,unique" json:"name"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"allocatedAmount"`
	Color           string          `gorm:"type:varchar(7)" json:"color"`
	IsSystem        bool            `gorm:"not null;default:false" json:"isSystem"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}
