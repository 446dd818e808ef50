package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"Bolso/internal/contracts"
	"Bolso/internal/domain/budget"
	appErrors "Bolso/internal/errors"
)

func (h *Handler) SetupBudget(c *gin.Context) {
	var body contracts.BudgetSetupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month := time.Now().UTC()
	if body.Month != "" {
		parsed, err := time.Parse("2006-01", body.Month)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "formato inválido, use AAAA-MM"))
			return
		}
		month = parsed
	}

	req := budget.SetupRequest{
		UserId: userID,
		Month:  month,
		Input: budget.SetupInput{
			Income:                body.Income,
			SavingsPercentage:     body.SavingsPercentage,
			GroceriesAllocation:   body.GroceriesAllocation,
			ContingencyPercentage: body.ContingencyPercentage,
		},
	}

	ctx := c.Request.Context()
	entity, plan, err := h.BudgetService.SetupBudget(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetSetupResponse{
		Message: "Orçamento configurado com sucesso",
		Budget:  entity,
		Plan:    plan,
	})
}

// PreviewSetup deriva as alocações sem gravar nada. Um restante negativo
// volta como resposta normal, não como erro.
func (h *Handler) PreviewSetup(c *gin.Context) {
	var body contracts.BudgetSetupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	if _, err := h.GetUserIDFromContext(c); err != nil {
		h.respondError(c, err)
		return
	}

	plan, err := h.BudgetService.PreviewSetup(budget.SetupInput{
		Income:                body.Income,
		SavingsPercentage:     body.SavingsPercentage,
		GroceriesAllocation:   body.GroceriesAllocation,
		ContingencyPercentage: body.ContingencyPercentage,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetPreviewResponse{Plan: plan})
}

func (h *Handler) GetCurrentBudget(c *gin.Context) {
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

	ctx := c.Request.Context()
	entity, err := h.BudgetService.GetBudgetForMonth(ctx, userID, at)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetResponse{Budget: entity})
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

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

	ctx := c.Request.Context()
	entity, err := h.BudgetService.UpdateBudget(ctx, userID, at, budget.SetupInput{
		Income:                body.Income,
		SavingsPercentage:     body.SavingsPercentage,
		GroceriesAllocation:   body.GroceriesAllocation,
		ContingencyPercentage: body.ContingencyPercentage,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetResponse{Budget: entity})
}

func (h *Handler) GetBudgetSummary(c *gin.Context) {
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

	ctx := c.Request.Context()
	summary, err := h.DashboardService.GetSummary(ctx, userID, at)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetSummaryResponse{Summary: summary})
}
