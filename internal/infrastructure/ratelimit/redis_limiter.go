// Package ratelimit limita peticiones con una ventana deslizante en Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result resultado de una consulta al limitador.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RedisLimiter ventana deslizante sobre un sorted set por identificador.
type RedisLimiter struct {
	client      redis.Cmdable
	prefix      string
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRedisLimiter construye el limitador. prefix separa las claves entre rutas.
func NewRedisLimiter(client redis.Cmdable, prefix string, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		prefix:      prefix,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// NewClient abre un cliente a partir de una URL redis:// y verifica la conexión.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Allow registra la petición de identifier y dice si está dentro del límite.
func (l *RedisLimiter) Allow(ctx context.Context, identifier string) (Result, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", l.prefix, identifier)
	now := l.now()
	windowStart := now.Add(-l.window)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, key, l.window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := int(countCmd.Val())
	remaining := l.maxRequests - count - 1
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count < l.maxRequests,
		Limit:     l.maxRequests,
		Remaining: remaining,
		ResetAt:   now.Add(l.window),
	}, nil
}
