package contracts

import (
	"Bolso/internal/domain/transaction"
	"Bolso/internal/money"
)

type TransactionCreateRequest struct {
	CategoryId  *string     `json:"category_id"`
	Amount      money.Money `json:"amount"`
	Description string      `json:"description" binding:"omitempty,max=255"`
	Date        string      `json:"date" binding:"required,datetime=2006-01-02"`
}

type TransactionUpdateRequest struct {
	CategoryId    *string      `json:"category_id"`
	ClearCategory bool         `json:"clear_category"`
	Amount        *money.Money `json:"amount"`
	Description   *string      `json:"description" binding:"omitempty,max=255"`
	Date          *string      `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type TransactionResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
