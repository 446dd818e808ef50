package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"Bolso/internal/domain/auth"
	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/dashboard"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	"Bolso/internal/domain/user"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/logger"
	"Bolso/internal/middleware"
	"Bolso/internal/pkg"
)

type Handler struct {
	UserService        user.Service
	AuthService        auth.Service
	JwtService         *middleware.JwtService
	BudgetService      budget.Service
	CategoryService    category.Service
	TransactionService transaction.Service
	GoalService        goal.Service
	DashboardService   dashboard.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

// parseMonth lê o query param "month" (formato 2006-01). Ausente, vale o
// mês corrente.
func (h *Handler) parseMonth(c *gin.Context) (time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, appErrors.NewValidationError("month", "formato inválido, use AAAA-MM")
	}
	return parsed, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}

// respondBindError distingue valores monetários rejeitados no unmarshal de
// erros de validação de campos.
func (h *Handler) respondBindError(c *gin.Context, err error) {
	if appErr, ok := appErrors.AsAppError(err); ok {
		h.respondError(c, appErr)
		return
	}
	h.respondError(c, appErrors.ParseValidationErrors(err))
}
