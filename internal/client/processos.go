package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func (c *Client) ListProcessos(ctx context.Context, token string) ([]models.Processo, error) {
	var processos []models.Processo
	if err := c.do(ctx, token, http.MethodGet, "/api/processos", nil, &processos); err != nil {
		return nil, err
	}
	return processos, nil
}

func (c *Client) GetProcesso(ctx context.Context, token string, id models.ID) (*models.Processo, error) {
	var processo models.Processo
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/processos/%d", id), nil, &processo); err != nil {
		return nil, err
	}
	return &processo, nil
}

func (c *Client) CreateProcesso(ctx context.Context, token string, req *models.CreateProcessoRequest) (*models.Processo, error) {
	var processo models.Processo
	if err := c.do(ctx, token, http.MethodPost, "/api/processos", req, &processo); err != nil {
		return nil, err
	}
	return &processo, nil
}

func (c *Client) UpdateProcesso(ctx context.Context, token string, id models.ID, req *models.UpdateProcessoRequest) (*models.Processo, error) {
	var processo models.Processo
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/processos/%d", id), req, &processo); err != nil {
		return nil, err
	}
	return &processo, nil
}

func (c *Client) DeleteProcesso(ctx context.Context, token string, id models.ID) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/processos/%d", id), nil, nil)
}
