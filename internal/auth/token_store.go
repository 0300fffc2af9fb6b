package auth

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// TokenStore holds issued admin session tokens. The in-memory store is
// intentionally not durable: a restart invalidates every session, which
// is the accepted model for this single-instance deployment. The Redis
// store exists for the day the console runs behind more than one
// instance.
type TokenStore interface {
	Issue(ctx context.Context) (string, error)
	Valid(ctx context.Context, token string) bool
	Revoke(ctx context.Context, token string) error
}

// --------------------------------------------------
// In-memory
// --------------------------------------------------

type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

func (s *MemoryTokenStore) Issue(ctx context.Context) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryTokenStore) Valid(ctx context.Context, token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

const tokenTTL = 12 * time.Hour

type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Issue(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, tokenKey(token), "1", tokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStore) Valid(ctx context.Context, token string) bool {
	n, err := s.client.Exists(ctx, tokenKey(token)).Result()
	return err == nil && n > 0
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}

func tokenKey(token string) string {
	return "admin:token:" + token
}
