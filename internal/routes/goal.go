package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Bolso/internal/contracts"
	"Bolso/internal/domain/goal"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := goal.CreateRequest{
		UserId:            userID,
		Name:              body.Name,
		TargetAmount:      body.TargetAmount,
		MonthlyAllocation: body.MonthlyAllocation,
		Deadline:          body.Deadline,
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.CreateGoal(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	goals, total, err := h.GoalService.ListActiveGoals(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(goals, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	entity, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := goal.UpdateRequest{
		Name:              body.Name,
		TargetAmount:      body.TargetAmount,
		MonthlyAllocation: body.MonthlyAllocation,
		Deadline:          body.Deadline,
		ClearDeadline:     body.ClearDeadline,
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.UpdateGoal(ctx, goalID, userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: entity})
}

// DeleteGoal desativa a meta em vez de apagá-la; o histórico de aportes
// permanece no registro.
func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.GoalService.DeactivateGoal(ctx, goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta desativada com sucesso"})
}

func (h *Handler) ContributeToGoal(c *gin.Context) {
	var body contracts.GoalContributionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	goalID, err := pkg.ParseULID(c.Param("id"))
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
	entity, err := h.GoalService.Contribute(ctx, goalID, userID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) GetGoalProgress(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	progress, err := h.GoalService.GetProgress(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalProgressResponse{Progress: progress})
}
