package contracts

import (
	"time"

	domainGoal "Bolso/internal/domain/goal"
	"Bolso/internal/money"
)

type GoalCreateRequest struct {
	Name              string      `json:"name" binding:"required,max=100"`
	TargetAmount      money.Money `json:"target_amount"`
	MonthlyAllocation money.Money `json:"monthly_allocation"`
	Deadline          *time.Time  `json:"deadline"`
}

type GoalUpdateRequest struct {
	Name              *string      `json:"name" binding:"omitempty,max=100"`
	TargetAmount      *money.Money `json:"target_amount"`
	MonthlyAllocation *money.Money `json:"monthly_allocation"`
	Deadline          *time.Time   `json:"deadline"`
	ClearDeadline     bool         `json:"clear_deadline"`
}

type GoalContributionRequest struct {
	Amount money.Money `json:"amount"`
}

type GoalResponse struct {
	Goal *domainGoal.Goal `json:"goal"`
}

type GoalProgressResponse struct {
	Progress *domainGoal.Progress `json:"progress"`
}
