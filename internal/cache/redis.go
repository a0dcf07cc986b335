package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Antonio13050/im-backoffice-api/internal/config"
)

// RedisStore implementa Store sobre Redis, para quando a API roda em mais
// de uma instância e o cache precisa ser compartilhado. Entradas são
// serializadas em JSON; o TTL fica por conta do próprio Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func redisKey(key string) string {
	return fmt.Sprintf("backoffice:cache:%s", key)
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, bool) {
	raw, err := s.client.Get(ctx, redisKey(key)).Result()
	if err != nil {
		// redis.Nil ou falha de rede: ambos tratados como miss.
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		log.Printf("Warning: invalid cache entry for %s: %v", key, err)
		return nil, false
	}

	return &entry, true
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) {
	raw, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Warning: failed to marshal cache entry for %s: %v", key, err)
		return
	}

	if err := s.client.Set(ctx, redisKey(key), raw, ttl).Err(); err != nil {
		// Cache é melhor-esforço: falha de escrita não derruba o load.
		log.Printf("Warning: failed to cache %s: %v", key, err)
	}
}

func (s *RedisStore) Clear(ctx context.Context, key string) {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		log.Printf("Warning: failed to clear cache %s: %v", key, err)
	}
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
