package contracts

import (
	"github.com/shopspring/decimal"

	"Bolso/internal/domain/category"
)

type CategoryCreateRequest struct {
	Name            string          `json:"name" binding:"required,max=100"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	Color           string          `json:"color" binding:"omitempty,hexcolor"`
}

type CategoryUpdateRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=100"`
	AllocatedAmount *decimal.Decimal `json:"allocated_amount"`
	Color           *string          `json:"color" binding:"omitempty,hexcolor"`
}

type CategoryResponse struct {
	Category *category.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int                  `json:"total"`
}
