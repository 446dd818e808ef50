package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Bolso/internal/contracts"
	"Bolso/internal/domain/category"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := category.CreateRequest{
		UserId:          userID,
		Name:            body.Name,
		AllocatedAmount: body.AllocatedAmount,
		Color:           body.Color,
	}

	ctx := c.Request.Context()
	entity, err := h.CategoryService.CreateCategory(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategoryResponse{Category: entity})
}

func (h *Handler) ListCategories(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBindError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := category.UpdateRequest{
		Name:            body.Name,
		AllocatedAmount: body.AllocatedAmount,
		Color:           body.Color,
	}

	ctx := c.Request.Context()
	entity, err := h.CategoryService.UpdateCategory(ctx, categoryID, userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryResponse{Category: entity})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.CategoryService.DeleteCategory(ctx, categoryID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria removida com sucesso"})
}
