package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Transaction é um registro de despesa. CategoryId nulo significa "sem
// categoria": o valor entra no total do mês mas em nenhuma soma por
// categoria. A exclusão é permanente, sem soft delete.
type Transaction struct {
	Id          ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID       `gorm:"type:varchar(26);not null;index:idx_transactions_user_date,priority:1" json:"userId"`
	CategoryId  *ulid.ULID      `gorm:"type:varchar(26);index:idx_transactions_category_id" json:"categoryId"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2" json:"date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}
