package port

import (
	"context"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
)

// EventPublisher streams committed audit records to downstream consumers.
// Publishing is best-effort; the ledger transaction has already committed.
type EventPublisher interface {
	PublishStockLog(ctx context.Context, rec domain.StockLog) error
	Close() error
}
