// Package cache holds the short-lived per-day counters behind the spam species
// cap.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/logging"
	"github.com/wildlog/wildlog_api/internal/models"
)

const (
	keyPrefix = "wildlog"
	// Counters outlive their day slightly so a late sighting in another
	// timezone still finds them.
	DailyTTL = 26 * time.Hour
)

// Counter increments a key and reports the new value. The first increment
// starts the ttl. Decr hands back a slot whose sighting was never stored.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Decr(ctx context.Context, key string) error
}

func DailyCapKey(profileID uuid.UUID, speciesID string, day models.Date) string {
	return fmt.Sprintf("%s:daily_cap:%s:%s:%s", keyPrefix, profileID, speciesID, day)
}

type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr runs INCR and EXPIRE NX in one MULTI block, so a key never lives
// without a ttl and an existing ttl is not pushed forward.
func (c *RedisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return incr.Val(), nil
}

// decrExisting never recreates a key that already expired.
var decrExisting = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 and tonumber(redis.call("GET", KEYS[1])) > 0 then
	return redis.call("DECR", KEYS[1])
end
return 0
`)

func (c *RedisCounter) Decr(ctx context.Context, key string) error {
	if err := decrExisting.Run(ctx, c.client, []string{key}).Err(); err != nil {
		return fmt.Errorf("failed to decrement %s: %w", key, err)
	}
	return nil
}

func (c *RedisCounter) Close() error {
	return c.client.Close()
}

type memoryEntry struct {
	count   int64
	expires time.Time
}

// MemoryCounter is the single-process fallback used when no redis address is
// configured.
type MemoryCounter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCounter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry, ok := c.entries[key]
	if !ok || !now.Before(entry.expires) {
		entry = memoryEntry{expires: now.Add(ttl)}
	}
	entry.count++
	c.entries[key] = entry

	if len(c.entries) > 1024 {
		c.evictExpired(now)
	}
	return entry.count, nil
}

func (c *MemoryCounter) Decr(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.count == 0 || !c.now().Before(entry.expires) {
		return nil
	}
	entry.count--
	c.entries[key] = entry
	return nil
}

func (c *MemoryCounter) evictExpired(now time.Time) {
	for key, entry := range c.entries {
		if !now.Before(entry.expires) {
			delete(c.entries, key)
		}
	}
}

// New returns a redis backed counter when cfg has an address and the server
// answers, the in-memory counter otherwise.
func New(ctx context.Context, cfg config.RedisConfig, logger *logging.Logger) Counter {
	if cfg.Addr == "" {
		logger.Info("redis address not configured, using in-memory daily counters")
		return NewMemoryCounter()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WithError(err).Warn("failed to connect to redis, using in-memory daily counters")
		_ = client.Close()
		return NewMemoryCounter()
	}

	logger.WithField("addr", cfg.Addr).Info("connected to redis")
	return NewRedisCounter(client)
}
