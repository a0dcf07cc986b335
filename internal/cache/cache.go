// Package cache define o serviço de cache injetado nos loaders: uma
// entrada por tipo de entidade, com dono e timestamp, validada por TTL.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// Chaves de cache, uma por tipo de entidade
const (
	KeyDashboard = "dashboard"
	KeyImoveis   = "imoveis"
	KeyClientes  = "clientes"
	KeyVisitas   = "visitas"
	KeyProcessos = "processos"
)

// DefaultTTL é a janela de validade padrão das entradas.
const DefaultTTL = 60 * time.Second

// Entry é uma fotografia cacheada de uma coleção já restrita ao escopo.
// OwnerUserID registra para quem a fotografia foi calculada: troca de
// usuário (logout/login) invalida a entrada mesmo dentro do TTL.
type Entry struct {
	Data        json.RawMessage `json:"data"`
	Timestamp   time.Time       `json:"timestamp"`
	OwnerUserID models.ID       `json:"ownerUserId"`
}

// Store é o serviço de cache propriamente dito. Implementações: memória
// (padrão, por processo) e Redis (para múltiplas instâncias da API).
// Get retorna a entrada e um booleano de existência; entradas expiradas
// contam como inexistentes. Falhas de backend são tratadas como miss.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration)
	Clear(ctx context.Context, key string)
}
