package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// ListUsuarios busca os usuários do back-office. Necessário para o
// cálculo de escopo de GERENTE (liderados diretos) e para a equipe do
// dashboard.
func (c *Client) ListUsuarios(ctx context.Context, token string) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := c.do(ctx, token, http.MethodGet, "/api/users", nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (c *Client) GetUsuario(ctx context.Context, token string, id models.ID) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}
