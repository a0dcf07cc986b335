// Package loader implementa o carregamento cacheado das coleções:
// cache com TTL e dono, cancelamento de requisições supersedidas e a
// máquina de estados ocioso → carregando → {pronto | falha}.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Antonio13050/im-backoffice-api/internal/cache"
	"github.com/Antonio13050/im-backoffice-api/internal/utils"
)

// Estado do loader
type Estado int

const (
	EstadoOcioso Estado = iota
	EstadoCarregando
	EstadoPronto
	EstadoFalha
)

// ErrSuperseded indica que o load foi cancelado por um load mais novo
// (ou pelo chamador). Não é falha: nenhum estado é alterado.
var ErrSuperseded = errors.New("load superseded")

// Fetch busca e já restringe ao escopo a coleção de um tipo de entidade.
type Fetch[T any] func(ctx context.Context, sess utils.Sessao) (T, error)

// Loader orquestra o carregamento de um tipo de entidade: consulta o
// cache (mesmo dono, idade < TTL), dispara a busca cancelando qualquer
// busca em voo e publica o resultado no cache. Uma busca supersedida
// nunca sobrescreve estado gravado por uma busca mais nova.
type Loader[T any] struct {
	store cache.Store
	key   string
	ttl   time.Duration
	fetch Fetch[T]

	mu     sync.Mutex
	estado Estado
	dados  T
	err    error
	gen    uint64
	cancel context.CancelFunc

	// agora é substituível em teste
	agora func() time.Time
}

func New[T any](store cache.Store, key string, ttl time.Duration, fetch Fetch[T]) *Loader[T] {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Loader[T]{
		store: store,
		key:   key,
		ttl:   ttl,
		fetch: fetch,
		agora: time.Now,
	}
}

// Load retorna a coleção para a sessão. Com cache válido (mesmo dono,
// idade < TTL) responde sem rede; caso contrário cancela a busca em voo,
// busca de novo e atualiza o cache. forceRefresh ignora o cache.
func (l *Loader[T]) Load(ctx context.Context, sess utils.Sessao, forceRefresh bool) (T, error) {
	l.mu.Lock()

	if !forceRefresh {
		if entry, ok := l.store.Get(ctx, l.key); ok {
			if entry.OwnerUserID == sess.UserID && l.agora().Sub(entry.Timestamp) < l.ttl {
				var dados T
				if err := json.Unmarshal(entry.Data, &dados); err == nil {
					l.estado = EstadoPronto
					l.dados = dados
					l.err = nil
					l.mu.Unlock()
					return dados, nil
				}
				// Entrada corrompida: segue para a rede.
				log.Printf("Warning: cache entry %s unreadable, refetching", l.key)
			}
		}
	}

	// Cancela a busca anterior em voo, se houver. Callbacks da busca
	// cancelada são descartados pela checagem de geração abaixo.
	if l.cancel != nil {
		l.cancel()
	}
	lctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.estado = EstadoCarregando
	l.mu.Unlock()

	dados, fetchErr := l.fetch(lctx, sess)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Busca supersedida (ou chamador desistiu): nenhuma transição de
	// estado, nenhum erro exposto.
	if gen != l.gen || lctx.Err() != nil {
		var zero T
		return zero, ErrSuperseded
	}
	l.cancel = nil

	if fetchErr != nil {
		if errors.Is(fetchErr, context.Canceled) {
			var zero T
			return zero, ErrSuperseded
		}
		var zero T
		l.estado = EstadoFalha
		l.dados = zero
		l.err = fetchErr
		return zero, fetchErr
	}

	if raw, err := json.Marshal(dados); err == nil {
		l.store.Set(ctx, l.key, cache.Entry{
			Data:        raw,
			Timestamp:   l.agora(),
			OwnerUserID: sess.UserID,
		}, l.ttl)
	}

	l.estado = EstadoPronto
	l.dados = dados
	l.err = nil
	return dados, nil
}

// Reload equivale a Load com forceRefresh.
func (l *Loader[T]) Reload(ctx context.Context, sess utils.Sessao) (T, error) {
	return l.Load(ctx, sess, true)
}

// Invalidate limpa a entrada de cache deste tipo de entidade. Todo
// caminho que cria/atualiza/deleta a entidade deve chamar isto antes da
// próxima leitura.
func (l *Loader[T]) Invalidate(ctx context.Context) {
	l.store.Clear(ctx, l.key)
}

// Snapshot retorna o estado corrente (dados, carregando, erro) sem
// disparar nenhuma busca.
func (l *Loader[T]) Snapshot() (Estado, T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.estado, l.dados, l.err
}
