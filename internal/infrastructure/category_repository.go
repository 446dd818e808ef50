package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"Bolso/internal/domain/category"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type CategoryRepository struct {
	DB *gorm.DB
}

type categoryDB struct {
	Id              string `gorm:"type:varchar(26);primaryKey"`
	UserId          string `gorm:"type:varchar(26)"`
	Name            string
	AllocatedAmount decimal.Decimal
	Color           string
	IsSystem        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toDomainCategory(row *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(row.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &category.Category{
		Id:              id,
		UserId:          uid,
		Name:            row.Name,
		AllocatedAmount: row.AllocatedAmount,
		Color:           row.Color,
		IsSystem:        row.IsSystem,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:              c.Id.String(),
		UserId:          c.UserId.String(),
		Name:            c.Name,
		AllocatedAmount: c.AllocatedAmount,
		Color:           c.Color,
		IsSystem:        c.IsSystem,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	row := toDBCategory(c)
	if err := r.DB.WithContext(ctx).Table("categories").Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return appErrors.NewConflictError("categoria com este nome")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []*category.Category) error {
	if len(categories) == 0 {
		return nil
	}
	rows := make([]*categoryDB, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, toDBCategory(c))
	}
	if err := r.DB.WithContext(ctx).Table("categories").Create(rows).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return appErrors.NewConflictError("categoria com este nome")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	row := toDBCategory(c)
	row.UpdatedAt = time.Now()
	result := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND user_id = ?", row.Id, row.UserId).
		Updates(row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return appErrors.NewConflictError("categoria com este nome")
		}
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("categories").
		Where("id = ?", id.String()).
		Delete(&categoryDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*category.Category, error) {
	var row categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&row)
}

func (r *CategoryRepository) GetByUserID(ctx context.Context, userID ulid.ULID) ([]*category.Category, error) {
	var rows []categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
