// Package client é o acesso remoto aos dados: wrappers finos por entidade
// sobre a API REST upstream (GET/POST/PUT/DELETE /api/{recurso}), sempre
// autenticados com o bearer token do usuário e canceláveis via contexto.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Antonio13050/im-backoffice-api/internal/config"
)

// Client fala com a API upstream. Seguro para uso concorrente.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// do executa uma chamada autenticada e decodifica a resposta JSON em out
// (out nil descarta o corpo). Token vazio é falha imediata; 401 vira
// ErrSessaoExpirada; demais status >= 400 viram *APIError.
func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	if token == "" {
		return ErrTokenAusente
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("falha ao serializar corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("falha ao montar requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Cancelamento chega aqui como *url.Error embrulhando ctx.Err();
		// o chamador distingue via errors.Is(err, context.Canceled).
		return fmt.Errorf("falha ao chamar %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessaoExpirada
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("falha ao decodificar resposta de %s: %w", path, err)
	}

	return nil
}

// errorMessage extrai a mensagem do corpo de erro upstream ({"error": ...}).
func errorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
