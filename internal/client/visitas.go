package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func (c *Client) ListVisitas(ctx context.Context, token string) ([]models.Visita, error) {
	var visitas []models.Visita
	if err := c.do(ctx, token, http.MethodGet, "/api/visitas", nil, &visitas); err != nil {
		return nil, err
	}
	return visitas, nil
}

func (c *Client) GetVisita(ctx context.Context, token string, id models.ID) (*models.Visita, error) {
	var visita models.Visita
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/visitas/%d", id), nil, &visita); err != nil {
		return nil, err
	}
	return &visita, nil
}

func (c *Client) CreateVisita(ctx context.Context, token string, req *models.CreateVisitaRequest) (*models.Visita, error) {
	var visita models.Visita
	if err := c.do(ctx, token, http.MethodPost, "/api/visitas", req, &visita); err != nil {
		return nil, err
	}
	return &visita, nil
}

func (c *Client) UpdateVisita(ctx context.Context, token string, id models.ID, req *models.UpdateVisitaRequest) (*models.Visita, error) {
	var visita models.Visita
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/visitas/%d", id), req, &visita); err != nil {
		return nil, err
	}
	return &visita, nil
}

func (c *Client) DeleteVisita(ctx context.Context, token string, id models.ID) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/visitas/%d", id), nil, nil)
}
