package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"Bolso/internal/domain/transaction"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionDB struct {
	Id          string `gorm:"type:varchar(26);primaryKey"`
	UserId      string `gorm:"type:varchar(26)"`
	CategoryId  *string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDomainTransaction(row *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(row.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	var categoryID *ulid.ULID
	if row.CategoryId != nil {
		cid, err := pkg.ParseULID(*row.CategoryId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		categoryID = &cid
	}
	return &transaction.Transaction{
		Id:          id,
		UserId:      uid,
		CategoryId:  categoryID,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var categoryID *string
	if t.CategoryId != nil {
		s := t.CategoryId.String()
		categoryID = &s
	}
	return &transactionDB{
		Id:          t.Id.String(),
		UserId:      t.UserId.String(),
		CategoryId:  categoryID,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	row := toDBTransaction(t)
	if err := r.DB.WithContext(ctx).Table("transactions").Create(row).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	row := toDBTransaction(t)
	row.UpdatedAt = time.Now()
	// Select força a escrita de category_id mesmo quando vira nil.
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ?", row.Id, row.UserId).
		Select("category_id", "amount", "description", "date", "updated_at").
		Updates(row)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", id.String()).
		Delete(&transactionDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*transaction.Transaction, error) {
	var row transactionDB
	if err := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransaction(&row)
}

func (r *TransactionRepository) GetByUserAndPeriod(ctx context.Context, userID ulid.ULID, from, to time.Time, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions").
		Where("user_id = ? AND date >= ? AND date < ?", userID.String(), from, to)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []transactionDB
	q := query.Order("date DESC, created_at DESC")
	if pagination != nil {
		q = q.Offset(pagination.Offset()).Limit(pagination.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	transactions := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	return transactions, total, nil
}
