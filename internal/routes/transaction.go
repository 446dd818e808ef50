package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"Bolso/internal/contracts"
	"Bolso/internal/domain/transaction"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULIDPtr(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "formato inválido, use AAAA-MM-DD"))
		return
	}

	req := transaction.CreateRequest{
		UserId:      userID,
		CategoryId:  categoryID,
		Amount:      body.Amount,
		Description: body.Description,
		Date:        date,
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.CreateTransaction(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionResponse{Transaction: entity})
}

// GetTransactions lista as transações do mês pedido (query "month",
// AAAA-MM, default mês corrente), paginadas.
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	at, err := h.parseMonth(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.ListMonth(ctx, userID, at, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionResponse{Transaction: entity})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULIDPtr(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	req := transaction.UpdateRequest{
		CategoryId:    categoryID,
		ClearCategory: body.ClearCategory,
		Amount:        body.Amount,
		Description:   body.Description,
	}

	if body.Date != nil {
		date, err := time.Parse("2006-01-02", *body.Date)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date", "formato inválido, use AAAA-MM-DD"))
			return
		}
		req.Date = &date
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.UpdateTransaction(ctx, transactionID, userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionResponse{Transaction: entity})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação removida com sucesso"})
}
