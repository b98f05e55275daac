package config

import (
	"context"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client for the optional search cache, or
// (nil, nil) when REDIS_ADDR is unset — the API runs fine without a cache.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
