package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
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
	overview, err := h.DashboardService.GetOverview(ctx, userID, at)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
