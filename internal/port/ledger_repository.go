package port

import (
	"context"
	"errors"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
)

// ErrConflict signals a write conflict on a ledger key; the operation left no
// effects and may be retried.
var ErrConflict = errors.New("ledger write conflict")

type LedgerRepository interface {
	// ApplyDelta atomically creates-or-increments the ledger entry for
	// (rec.WarehouseID, rec.ProductID) by rec.QuantityChange and appends rec to
	// the audit log in the same transaction. Returns the post-mutation entry
	// and the stored record.
	ApplyDelta(ctx context.Context, rec domain.StockLog) (*domain.LedgerEntry, *domain.StockLog, error)

	// SetQuantity overwrites an entry's quantity, holding the row lock for the
	// full read-modify-write span, and appends an ADJUSTMENT record for the
	// observed diff. A zero diff appends nothing and the returned record is nil.
	// Returns a nil entry when no entry with that ID exists.
	SetQuantity(ctx context.Context, entryID, principalID, newQuantity int64) (*domain.LedgerEntry, *domain.StockLog, error)

	// GetEntry returns nil when no entry with that ID exists.
	GetEntry(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)

	// GetEntryByPair returns nil when the pair has never been mutated.
	GetEntryByPair(ctx context.Context, warehouseID, productID int64) (*domain.LedgerEntry, error)

	// ListEntries returns the ledger entries of every warehouse owned by ownerID.
	ListEntries(ctx context.Context, ownerID int64) ([]domain.LedgerEntry, error)

	// ListStockLogs returns the audit records of every warehouse owned by ownerID,
	// newest first.
	ListStockLogs(ctx context.Context, ownerID int64) ([]domain.StockLog, error)
}
