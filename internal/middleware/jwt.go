package middleware

import (
	"net/http"
	"strings"
	"time"

	"FinMate/config"
	appErrors "FinMate/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type JwtService struct {
	secret     []byte
	expiration time.Duration
}

func NewJwtService(cfg *config.Config) *JwtService {
	return &JwtService{
		secret:     []byte(cfg.JWT.Secret),
		expiration: cfg.JWT.Expiration,
	}
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
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
			return nil, appErrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado").WithError(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado")
	}
	return claims.Subject, nil
}

func AuthMiddleware(jwtService *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Token de autenticação não fornecido",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Formato do token inválido",
			})
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "TOKEN_INVALID",
				"message": "Token inválido ou expirado",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
