package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

// MySQL server error codes that mean "retry the transaction".
const (
	erLockDeadlock    = 1213
	erLockWaitTimeout = 1205
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// ApplyDelta creates-or-increments the (warehouse, product) entry and appends
// the audit record in one transaction. The increment is a single statement, so
// two concurrent deltas on the same pair serialize on the row lock and neither
// update is lost.
func (m *MySQLAdapter) ApplyDelta(ctx context.Context, rec domain.StockLog) (*domain.LedgerEntry, *domain.StockLog, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO inventory (warehouse_id, product_id, quantity)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity), last_updated = NOW()`,
		rec.WarehouseID, rec.ProductID, rec.QuantityChange,
	)
	if err != nil {
		return nil, nil, wrapMySQLErr("upsert inventory", err)
	}

	var entry domain.LedgerEntry
	err = tx.QueryRowContext(ctx, `
		SELECT id, warehouse_id, product_id, quantity, last_updated
		FROM inventory WHERE warehouse_id = ? AND product_id = ?`,
		rec.WarehouseID, rec.ProductID,
	).Scan(&entry.ID, &entry.WarehouseID, &entry.ProductID, &entry.Quantity, &entry.LastUpdated)
	if err != nil {
		return nil, nil, wrapMySQLErr("read inventory", err)
	}

	stored := rec
	stored.Timestamp = time.Now()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO stock_logs (product_id, warehouse_id, user_id, action_type, quantity_change, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		stored.ProductID, stored.WarehouseID, stored.PrincipalID, stored.Action, stored.QuantityChange, stored.Timestamp,
	)
	if err != nil {
		return nil, nil, wrapMySQLErr("insert stock log", err)
	}
	stored.ID, _ = res.LastInsertId()

	if err := tx.Commit(); err != nil {
		return nil, nil, wrapMySQLErr("commit", err)
	}
	return &entry, &stored, nil
}

// SetQuantity overwrites an entry under a row lock held for the whole
// read-modify-write span, so the ADJUSTMENT diff is truthful relative to the
// quantity actually replaced.
func (m *MySQLAdapter) SetQuantity(ctx context.Context, entryID, principalID, newQuantity int64) (*domain.LedgerEntry, *domain.StockLog, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var entry domain.LedgerEntry
	err = tx.QueryRowContext(ctx, `
		SELECT id, warehouse_id, product_id, quantity, last_updated
		FROM inventory WHERE id = ? FOR UPDATE`, entryID,
	).Scan(&entry.ID, &entry.WarehouseID, &entry.ProductID, &entry.Quantity, &entry.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, wrapMySQLErr("lock inventory row", err)
	}

	diff := newQuantity - entry.Quantity
	if diff == 0 {
		if err := tx.Commit(); err != nil {
			return nil, nil, wrapMySQLErr("commit", err)
		}
		return &entry, nil, nil
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		UPDATE inventory SET quantity = ?, last_updated = NOW() WHERE id = ?`,
		newQuantity, entryID,
	)
	if err != nil {
		return nil, nil, wrapMySQLErr("update inventory", err)
	}
	entry.Quantity = newQuantity
	entry.LastUpdated = now

	stored := domain.StockLog{
		ProductID:      entry.ProductID,
		WarehouseID:    entry.WarehouseID,
		PrincipalID:    principalID,
		Action:         domain.ActionAdjustment,
		QuantityChange: diff,
		Timestamp:      now,
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO stock_logs (product_id, warehouse_id, user_id, action_type, quantity_change, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		stored.ProductID, stored.WarehouseID, stored.PrincipalID, stored.Action, stored.QuantityChange, stored.Timestamp,
	)
	if err != nil {
		return nil, nil, wrapMySQLErr("insert stock log", err)
	}
	stored.ID, _ = res.LastInsertId()

	if err := tx.Commit(); err != nil {
		return nil, nil, wrapMySQLErr("commit", err)
	}
	return &entry, &stored, nil
}

func (m *MySQLAdapter) GetEntry(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := m.db.QueryRowContext(ctx, `
		SELECT id, warehouse_id, product_id, quantity, last_updated
		FROM inventory WHERE id = ?`, entryID,
	).Scan(&entry.ID, &entry.WarehouseID, &entry.ProductID, &entry.Quantity, &entry.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	return &entry, nil
}

func (m *MySQLAdapter) GetEntryByPair(ctx context.Context, warehouseID, productID int64) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := m.db.QueryRowContext(ctx, `
		SELECT id, warehouse_id, product_id, quantity, last_updated
		FROM inventory WHERE warehouse_id = ? AND product_id = ?`,
		warehouseID, productID,
	).Scan(&entry.ID, &entry.WarehouseID, &entry.ProductID, &entry.Quantity, &entry.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	return &entry, nil
}

func (m *MySQLAdapter) ListEntries(ctx context.Context, ownerID int64) ([]domain.LedgerEntry, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT i.id, i.warehouse_id, i.product_id, i.quantity, i.last_updated
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.owner_user_id = ?
		ORDER BY i.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		if err := rows.Scan(&entry.ID, &entry.WarehouseID, &entry.ProductID, &entry.Quantity, &entry.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (m *MySQLAdapter) ListStockLogs(ctx context.Context, ownerID int64) ([]domain.StockLog, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT l.id, l.product_id, l.warehouse_id, l.user_id, l.action_type, l.quantity_change, l.created_at
		FROM stock_logs l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE w.owner_user_id = ?
		ORDER BY l.id DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query stock logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.StockLog
	for rows.Next() {
		var rec domain.StockLog
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.PrincipalID, &rec.Action, &rec.QuantityChange, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		logs = append(logs, rec)
	}
	return logs, rows.Err()
}

// wrapMySQLErr maps deadlock and lock-wait-timeout to the retryable conflict
// sentinel; everything else passes through wrapped.
func wrapMySQLErr(op string, err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && (mysqlErr.Number == erLockDeadlock || mysqlErr.Number == erLockWaitTimeout) {
		return fmt.Errorf("%s: %w", op, port.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
