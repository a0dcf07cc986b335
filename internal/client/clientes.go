package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func (c *Client) ListClientes(ctx context.Context, token string) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := c.do(ctx, token, http.MethodGet, "/api/clientes", nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (c *Client) GetCliente(ctx context.Context, token string, id models.ID) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/clientes/%d", id), nil, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *Client) CreateCliente(ctx context.Context, token string, req *models.CreateClienteRequest) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := c.do(ctx, token, http.MethodPost, "/api/clientes", req, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *Client) UpdateCliente(ctx context.Context, token string, id models.ID, req *models.UpdateClienteRequest) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/clientes/%d", id), req, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *Client) DeleteCliente(ctx context.Context, token string, id models.ID) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", id), nil, nil)
}
