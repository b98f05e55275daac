package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchCacheVersionKey = "hotel_search:ver"

// GetFromRedis loads a cached JSON value into target. The second return is
// false on a cache miss.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cached, err := rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(cached), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis stores a JSON-encoded value with a TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// SearchCacheVersion returns the current cache namespace version ("0" when
// the key has never been bumped).
func SearchCacheVersion(ctx context.Context, rdb *redis.Client) string {
	ver, err := rdb.Get(ctx, searchCacheVersionKey).Result()
	if err != nil {
		return "0"
	}
	return ver
}

// BumpSearchCacheVersion invalidates all cached search results by moving
// them into a dead namespace; old keys fall out via their TTL.
func BumpSearchCacheVersion(ctx context.Context, rdb *redis.Client) error {
	return rdb.Incr(ctx, searchCacheVersionKey).Err()
}
