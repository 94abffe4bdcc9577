package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

var (
	ErrNotAuthorized     = errors.New("principal has no warehouse assigned")
	ErrCrossTenantAccess = errors.New("entity belongs to another warehouse")
	ErrNotFound          = errors.New("not found")
	ErrZeroDelta         = errors.New("quantity delta must be non-zero")
	ErrDuplicateRequest  = errors.New("duplicate request")
)

const (
	maxConflictRetries = 3
	conflictBackoff    = 5 * time.Millisecond
	idempotencyPrefix  = "mutation:"
)

// SyncJob carries a committed mutation to the post-commit workers, which
// refresh the cache mirror and publish the audit record.
type SyncJob struct {
	Record   domain.StockLog
	Quantity int64
}

type InventoryService struct {
	ledger    port.LedgerRepository
	catalog   port.CatalogRepository
	cache     port.CacheRepository
	logger    *zap.Logger
	syncQueue chan SyncJob
}

func NewInventoryService(ledger port.LedgerRepository, catalog port.CatalogRepository, cache port.CacheRepository, logger *zap.Logger, queueSize int) *InventoryService {
	return &InventoryService{
		ledger:    ledger,
		catalog:   catalog,
		cache:     cache,
		logger:    logger,
		syncQueue: make(chan SyncJob, queueSize),
	}
}

// ApplyDelta applies a signed quantity change to the principal's ledger entry
// for the product, creating the entry at zero first if the pair has never been
// mutated. The ledger update and the audit append commit together. requestID
// is optional; when set, a replay of the same ID is rejected without effects.
func (s *InventoryService) ApplyDelta(ctx context.Context, principal domain.Principal, productID, delta int64, requestID string) (*domain.LedgerEntry, error) {
	if delta == 0 {
		return nil, ErrZeroDelta
	}

	if requestID != "" {
		ok, err := s.cache.SetIdempotency(ctx, idempotencyPrefix+requestID)
		if err != nil {
			return nil, fmt.Errorf("idempotency check failed: %w", err)
		}
		if !ok {
			return nil, ErrDuplicateRequest
		}
	}

	warehouse, err := s.catalog.FirstWarehouseByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, ErrNotAuthorized
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.WarehouseID != warehouse.ID {
		return nil, ErrCrossTenantAccess
	}

	action := domain.ActionInbound
	if delta < 0 {
		action = domain.ActionOutbound
	}

	rec := domain.StockLog{
		ProductID:      product.ID,
		WarehouseID:    warehouse.ID,
		PrincipalID:    principal.ID,
		Action:         action,
		QuantityChange: delta,
	}

	entry, stored, err := s.withConflictRetry(ctx, "apply delta", func() (*domain.LedgerEntry, *domain.StockLog, error) {
		return s.ledger.ApplyDelta(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	mutationsTotal.WithLabelValues(string(action)).Inc()
	s.enqueueSync(SyncJob{Record: *stored, Quantity: entry.Quantity})
	return entry, nil
}

// SetQuantity overwrites a ledger entry's quantity (manual correction). The
// last writer wins; an ADJUSTMENT record logs the diff against the quantity
// the transaction actually replaced, and a no-change write logs nothing.
func (s *InventoryService) SetQuantity(ctx context.Context, principal domain.Principal, entryID, newQuantity int64) (*domain.LedgerEntry, error) {
	entry, err := s.ledger.GetEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("resolve ledger entry: %w", err)
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	warehouse, err := s.catalog.GetWarehouse(ctx, entry.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("resolve warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, ErrNotFound
	}
	if warehouse.OwnerID != principal.ID {
		return nil, ErrCrossTenantAccess
	}

	updated, stored, err := s.withConflictRetry(ctx, "set quantity", func() (*domain.LedgerEntry, *domain.StockLog, error) {
		return s.ledger.SetQuantity(ctx, entryID, principal.ID, newQuantity)
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	if stored != nil {
		mutationsTotal.WithLabelValues(string(domain.ActionAdjustment)).Inc()
		s.enqueueSync(SyncJob{Record: *stored, Quantity: updated.Quantity})
	}
	return updated, nil
}

// GetQuantity serves current-quantity reads from the cache mirror, falling
// through to the ledger on a miss. A pair that was never mutated reads as zero.
func (s *InventoryService) GetQuantity(ctx context.Context, principal domain.Principal, productID int64) (int64, error) {
	warehouse, err := s.catalog.FirstWarehouseByOwner(ctx, principal.ID)
	if err != nil {
		return 0, fmt.Errorf("resolve warehouse: %w", err)
	}
	if warehouse == nil {
		return 0, ErrNotAuthorized
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("resolve product: %w", err)
	}
	if product == nil {
		return 0, ErrNotFound
	}
	if product.WarehouseID != warehouse.ID {
		return 0, ErrCrossTenantAccess
	}

	if qty, ok, err := s.cache.GetQuantity(ctx, warehouse.ID, product.ID); err == nil && ok {
		return qty, nil
	} else if err != nil {
		s.logger.Warn("cache read failed, falling through to ledger",
			zap.Int64("warehouse_id", warehouse.ID),
			zap.Int64("product_id", product.ID),
			zap.Error(err))
	}

	entry, err := s.ledger.GetEntryByPair(ctx, warehouse.ID, product.ID)
	if err != nil {
		return 0, fmt.Errorf("read ledger entry: %w", err)
	}
	var qty int64
	if entry != nil {
		qty = entry.Quantity
	}
	if err := s.cache.SetQuantity(ctx, warehouse.ID, product.ID, qty); err != nil {
		s.logger.Warn("cache fill failed", zap.Error(err))
	}
	return qty, nil
}

// ListLedgerEntries returns every ledger entry reachable from the principal's
// owned warehouses.
func (s *InventoryService) ListLedgerEntries(ctx context.Context, principal domain.Principal) ([]domain.LedgerEntry, error) {
	return s.ledger.ListEntries(ctx, principal.ID)
}

// ListAuditRecords returns every audit record reachable from the principal's
// owned warehouses, newest first.
func (s *InventoryService) ListAuditRecords(ctx context.Context, principal domain.Principal) ([]domain.StockLog, error) {
	return s.ledger.ListStockLogs(ctx, principal.ID)
}

func (s *InventoryService) withConflictRetry(ctx context.Context, op string, fn func() (*domain.LedgerEntry, *domain.StockLog, error)) (*domain.LedgerEntry, *domain.StockLog, error) {
	for attempt := 0; ; attempt++ {
		entry, stored, err := fn()
		if err == nil {
			return entry, stored, nil
		}
		if !errors.Is(err, port.ErrConflict) || attempt >= maxConflictRetries {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		conflictRetriesTotal.Inc()
		s.logger.Warn("ledger conflict, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt+1))
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(time.Duration(attempt+1) * conflictBackoff):
		}
	}
}

// enqueueSync hands a committed mutation to the workers without ever blocking
// the caller; the mirror and the event stream are best-effort.
func (s *InventoryService) enqueueSync(job SyncJob) {
	select {
	case s.syncQueue <- job:
	default:
		syncDropsTotal.Inc()
		s.logger.Warn("sync queue full, dropping job",
			zap.Int64("warehouse_id", job.Record.WarehouseID),
			zap.Int64("product_id", job.Record.ProductID))
	}
}

func (s *InventoryService) GetSyncQueue() <-chan SyncJob {
	return s.syncQueue
}

func (s *InventoryService) Close() {
	close(s.syncQueue)
}
