package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a redis client for the OTP limiter counters.
func NewRedis(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// PingRedis verifies connectivity.
func PingRedis(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
