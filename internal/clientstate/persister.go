// Package clientstate keeps per-visitor state such as carts and wishlists
// alive in the process and persists it asynchronously.
package clientstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched visitor state is retained
const DefaultTTL = 30 * 24 * time.Hour

// Persister loads and saves JSON-encodable state by key
type Persister interface {
	// Load decodes the value stored under key into dst. found is false when
	// nothing is stored.
	Load(ctx context.Context, key string, dst interface{}) (found bool, err error)
	Save(ctx context.Context, key string, v interface{}) error
}

// RedisPersister stores state as JSON strings in Redis
type RedisPersister struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisPersister creates a Redis persister. Keys are stored as prefix+key
// and expire after ttl of inactivity.
func NewRedisPersister(client *redis.Client, prefix string, ttl time.Duration) *RedisPersister {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisPersister{client: client, prefix: prefix, ttl: ttl}
}

// Load reads key from Redis
func (p *RedisPersister) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := p.client.Get(ctx, p.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Save writes v under key and refreshes its expiry
func (p *RedisPersister) Save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := p.client.Set(ctx, p.prefix+key, raw, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// MemoryPersister keeps encoded state in process memory. It is used when no
// Redis is configured and in tests.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryPersister creates an empty in-memory persister
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

// Load decodes the stored value for key
func (p *MemoryPersister) Load(_ context.Context, key string, dst interface{}) (bool, error) {
	p.mu.RLock()
	raw, ok := p.data[key]
	p.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Save stores an encoded copy of v
func (p *MemoryPersister) Save(_ context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	p.mu.Lock()
	p.data[key] = raw
	p.mu.Unlock()
	return nil
}
