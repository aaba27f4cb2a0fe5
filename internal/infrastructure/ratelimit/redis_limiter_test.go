package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_RedisCaido(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewRedisLimiter(client, "login", 5, time.Minute)
	_, err := l.Allow(context.Background(), "10.0.0.1")
	require.Error(t, err, "sin servidor el pipeline debe fallar")
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := NewClient(context.Background(), "http://no-es-redis")
	assert.Error(t, err)
}
