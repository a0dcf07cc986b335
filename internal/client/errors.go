package client

import (
	"errors"
	"fmt"
)

// ErrSessaoExpirada indica resposta 401 da API upstream: o token do
// usuário não vale mais e o chamador deve redirecionar para o login.
var ErrSessaoExpirada = errors.New("sessão expirada")

// ErrTokenAusente indica chamada a recurso protegido sem token.
var ErrTokenAusente = errors.New("token de autenticação ausente")

// APIError carrega uma resposta de erro não-401 da API upstream.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream respondeu %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream respondeu %d", e.Status)
}
