package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"Bolso/config"
	"Bolso/internal/domain/user"
	appErrors "Bolso/internal/errors"
)

type JwtService struct {
	secret      []byte
	expiration  time.Duration
	UserService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userService *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, appErrors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "JWT_SECRET não configurado",
		})
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiration:  cfg.Expiration,
		UserService: userService,
	}, nil
}

func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.Id.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", appErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", appErrors.ErrInvalidToken
	}
	return claims.Subject, nil
}

func AuthMiddleware(jwtService *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Token de autenticação não fornecido.",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Formato do token inválido. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "INVALID_TOKEN",
				"message": "Token inválido ou expirado.",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
