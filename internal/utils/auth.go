package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Antonio13050/im-backoffice-api/internal/config"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// Claims representa os claims do JWT emitido pelo backend de autenticação
type Claims struct {
	UserID models.ID    `json:"user_id"`
	Papel  models.Papel `json:"papel"`
	jwt.RegisteredClaims
}

// Sessao carrega a identidade do usuário autenticado através da requisição,
// incluindo o token original para repasse à API upstream.
type Sessao struct {
	UserID models.ID
	Papel  models.Papel
	Token  string
}

// GenerateJWT gera um token JWT para um usuário (usado em testes e no
// ambiente de desenvolvimento; em produção o token vem do backend de auth)
func GenerateJWT(userID models.ID, papel models.Papel, cfg *config.Config) (string, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.ExpirationHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		Papel:  papel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT valida um token JWT e retorna os claims
func ValidateJWT(tokenString string, cfg *config.Config) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// NormalizeEmail normaliza um email (lowercase e trim)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
