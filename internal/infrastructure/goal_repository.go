package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"Bolso/internal/domain/goal"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type GoalRepository struct {
	DB *gorm.DB
}

type goalDB struct {
	Id                string `gorm:"type:varchar(26);primaryKey"`
	UserId            string `gorm:"type:varchar(26)"`
	Name              string
	TargetAmount      decimal.Decimal
	CurrentAmount     decimal.Decimal
	MonthlyAllocation decimal.Decimal
	Deadline          *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func toDomainGoal(row *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(row.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goal.Goal{
		Id:                id,
		UserId:            uid,
		Name:              row.Name,
		TargetAmount:      row.TargetAmount,
		CurrentAmount:     row.CurrentAmount,
		MonthlyAllocation: row.MonthlyAllocation,
		Deadline:          row.Deadline,
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	return &goalDB{
		Id:                g.Id.String(),
		UserId:            g.UserId.String(),
		Name:              g.Name,
		TargetAmount:      g.TargetAmount,
		CurrentAmount:     g.CurrentAmount,
		MonthlyAllocation: g.MonthlyAllocation,
		Deadline:          g.Deadline,
		IsActive:          g.IsActive,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	row := toDBGoal(g)
	if err := r.DB.WithContext(ctx).Table("goals").Create(row).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	row := toDBGoal(g)
	row.UpdatedAt = time.Now()
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND user_id = ?", row.Id, row.UserId).
		Select("name", "target_amount", "monthly_allocation", "deadline", "is_active", "updated_at").
		Updates(row)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*goal.Goal, error) {
	var row goalDB
	if err := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&row)
}

func (r *GoalRepository) GetActiveByUser(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error) {
	query := r.DB.WithContext(ctx).Table("goals").
		Where("user_id = ? AND is_active = ?", userID.String(), true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []goalDB
	q := query.Order("created_at ASC")
	if pagination != nil {
		q = q.Offset(pagination.Offset()).Limit(pagination.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	goals := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		goals = append(goals, g)
	}
	return goals, total, nil
}

func (r *GoalRepository) Deactivate(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND is_active = ?", id.String(), true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

// IncrementCurrentAmount soma delta direto no banco, sem ler antes.
// Aportes concorrentes nunca se perdem.
func (r *GoalRepository) IncrementCurrentAmount(ctx context.Context, id ulid.ULID, delta decimal.Decimal) error {
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND is_active = ?", id.String(), true).
		Updates(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount + ?", delta),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}
