package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Bolso/internal/contracts"
	"Bolso/internal/domain/auth"
	"Bolso/internal/domain/user"
	appErrors "Bolso/internal/errors"
)

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.Login(ctx, auth.Login{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Login realizado com sucesso",
		Token:   token,
		User:    entity,
	})
}

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entity := &user.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}

	ctx := c.Request.Context()
	if err := h.AuthService.Register(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Message: "Usuário cadastrado com sucesso",
		Token:   token,
		User:    entity,
	})
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	var body contracts.GoogleAuthRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.GoogleLogin(ctx, body.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Login com Google realizado com sucesso",
		Token:   token,
		User:    entity,
	})
}
