package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// ListImoveis busca todos os imóveis visíveis ao token informado.
func (c *Client) ListImoveis(ctx context.Context, token string) ([]models.Imovel, error) {
	var imoveis []models.Imovel
	if err := c.do(ctx, token, http.MethodGet, "/api/imoveis", nil, &imoveis); err != nil {
		return nil, err
	}
	return imoveis, nil
}

func (c *Client) GetImovel(ctx context.Context, token string, id models.ID) (*models.Imovel, error) {
	var imovel models.Imovel
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/imoveis/%d", id), nil, &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) CreateImovel(ctx context.Context, token string, req *models.CreateImovelRequest) (*models.Imovel, error) {
	var imovel models.Imovel
	if err := c.do(ctx, token, http.MethodPost, "/api/imoveis", req, &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) UpdateImovel(ctx context.Context, token string, id models.ID, req *models.UpdateImovelRequest) (*models.Imovel, error) {
	var imovel models.Imovel
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/imoveis/%d", id), req, &imovel); err != nil {
		return nil, err
	}
	return &imovel, nil
}

func (c *Client) DeleteImovel(ctx context.Context, token string, id models.ID) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/imoveis/%d", id), nil, nil)
}
