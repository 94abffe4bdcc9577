package port

import "context"

type CacheRepository interface {
	// GetQuantity reads the cached quantity for a pair; the second return is
	// false on a miss.
	GetQuantity(ctx context.Context, warehouseID, productID int64) (int64, bool, error)

	// SetQuantity stores the post-commit quantity for a pair.
	SetQuantity(ctx context.Context, warehouseID, productID, quantity int64) error

	// SetIdempotency claims a key for idempotency check, returns false if already claimed.
	SetIdempotency(ctx context.Context, key string) (bool, error)
}
