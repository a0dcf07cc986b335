package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Antonio13050/im-backoffice-api/internal/config"
	"github.com/Antonio13050/im-backoffice-api/internal/utils"
)

const sessaoKey = "sessao"

// AuthMiddleware validates JWT token and injects user information into context
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate token
		claims, err := utils.ValidateJWT(tokenString, cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		// Guarda a sessão (id, papel e token original para repasse ao
		// upstream) no contexto da requisição
		c.Set(sessaoKey, utils.Sessao{
			UserID: claims.UserID,
			Papel:  claims.Papel,
			Token:  tokenString,
		})

		c.Next()
	}
}

// SessaoFrom recupera a sessão injetada pelo AuthMiddleware.
func SessaoFrom(c *gin.Context) (utils.Sessao, bool) {
	v, exists := c.Get(sessaoKey)
	if !exists {
		return utils.Sessao{}, false
	}
	sess, ok := v.(utils.Sessao)
	return sess, ok
}
