package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	stockKeyPrefix    = "stock:"
	stockKeyTTL       = 1 * time.Hour
	idempotencyKeyTTL = 24 * time.Hour
)

// RedisAdapter mirrors post-commit quantities and claims idempotency keys.
// MySQL stays the source of truth; a cache miss just falls through.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) GetQuantity(ctx context.Context, warehouseID, productID int64) (int64, bool, error) {
	val, err := r.client.Get(ctx, stockKey(warehouseID, productID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

func (r *RedisAdapter) SetQuantity(ctx context.Context, warehouseID, productID, quantity int64) error {
	return r.client.Set(ctx, stockKey(warehouseID, productID), quantity, stockKeyTTL).Err()
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func stockKey(warehouseID, productID int64) string {
	return fmt.Sprintf("%s%d:%d", stockKeyPrefix, warehouseID, productID)
}
