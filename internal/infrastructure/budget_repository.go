package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"Bolso/internal/domain/budget"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type BudgetRepository struct {
	DB *gorm.DB
}

type budgetDB struct {
	Id                    string `gorm:"type:varchar(26);primaryKey"`
	UserId                string `gorm:"type:varchar(26)"`
	Month                 time.Time
	Income                decimal.Decimal
	SavingsPercentage     decimal.Decimal
	GroceriesAllocation   decimal.Decimal
	ContingencyPercentage decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func toDomainBudget(row *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(row.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &budget.Budget{
		Id:                    id,
		UserId:                uid,
		Month:                 row.Month,
		Income:                row.Income,
		SavingsPercentage:     row.SavingsPercentage,
		GroceriesAllocation:   row.GroceriesAllocation,
		ContingencyPercentage: row.ContingencyPercentage,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:                    b.Id.String(),
		UserId:                b.UserId.String(),
		Month:                 b.Month,
		Income:                b.Income,
		SavingsPercentage:     b.SavingsPercentage,
		GroceriesAllocation:   b.GroceriesAllocation,
		ContingencyPercentage: b.ContingencyPercentage,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	row := toDBBudget(b)
	if err := r.DB.WithContext(ctx).Table("monthly_budgets").Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Dois setups simultâneos para o mesmo mês: o índice único
			// (user_id, month) deixa passar só o primeiro.
			return appErrors.NewConflictError("orçamento para este mês")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Update é uma escrita condicional no updated_at lido: se outra escrita
// chegou antes, nada é atualizado e o chamador recebe o conflito para
// reler e repetir.
func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	row := toDBBudget(b)
	previous := b.UpdatedAt
	row.UpdatedAt = time.Now()

	// Select força a escrita das colunas mesmo com valor zero; um
	// percentual zerado é um valor válido, não um campo ausente.
	result := r.DB.WithContext(ctx).Table("monthly_budgets").
		Where("id = ? AND updated_at = ?", row.Id, previous).
		Select("income", "savings_percentage", "groceries_allocation", "contingency_percentage", "updated_at").
		Updates(row)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrConcurrencyConflict
	}
	return nil
}

func (r *BudgetRepository) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month time.Time) (*budget.Budget, error) {
	var row budgetDB
	if err := r.DB.WithContext(ctx).Table("monthly_budgets").
		Where("user_id = ? AND month = ?", userID.String(), month).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBudget(&row)
}
