// Package lock provides domain.CommitGuard implementations.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"eventdesk/internal/domain"
)

// ErrNotOwned is returned by release when the lock expired and was taken by someone else.
var ErrNotOwned = errors.New("schedule guard no longer owned")

const keyPrefix = "eventdesk:schedule-lock:"

var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// NoopGuard never blocks. Concurrent writers may both pass their checks.
type NoopGuard struct{}

func (NoopGuard) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// RedisOptions tunes RedisGuard.
type RedisOptions struct {
	TTL        time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// RedisGuard is a per-event distributed lock on Redis.
type RedisGuard struct {
	client redis.UniversalClient
	opts   RedisOptions
}

// NewRedisGuard returns a guard using client. Zero options fall back to a 10s
// TTL and 5 attempts spaced 50ms apart.
func NewRedisGuard(client redis.UniversalClient, opts RedisOptions) *RedisGuard {
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 5
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 50 * time.Millisecond
	}
	return &RedisGuard{client: client, opts: opts}
}

// Acquire takes the lock for eventID, retrying while it is held elsewhere.
// It returns domain.ErrGuardBusy when every attempt found the lock taken.
func (g *RedisGuard) Acquire(ctx context.Context, eventID string) (func(context.Context) error, error) {
	key := keyPrefix + eventID
	token := uuid.NewString()

	for attempt := 0; attempt < g.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.opts.RetryDelay):
			}
		}
		ok, err := g.client.SetNX(ctx, key, token, g.opts.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return g.releaser(key, token), nil
		}
	}
	return nil, domain.ErrGuardBusy
}

func (g *RedisGuard) releaser(key, token string) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, g.client, []string{key}, token).Int()
		if err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		if n == 0 {
			return ErrNotOwned
		}
		return nil
	}
}

// NewRedisClient builds a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
