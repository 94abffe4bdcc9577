package domain

import "time"

// LedgerEntry is the authoritative current quantity for one
// (warehouse, product) pair. At most one entry exists per pair.
type LedgerEntry struct {
	ID          int64
	WarehouseID int64
	ProductID   int64
	Quantity    int64
	LastUpdated time.Time
}
