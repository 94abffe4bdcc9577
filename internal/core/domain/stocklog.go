package domain

import "time"

type StockAction string

const (
	ActionInbound    StockAction = "INBOUND"
	ActionOutbound   StockAction = "OUTBOUND"
	ActionAdjustment StockAction = "ADJUSTMENT"
)

// StockLog is an immutable audit record for one applied quantity change.
// The sum of QuantityChange over all records for a (warehouse, product) pair
// equals that pair's current ledger quantity.
type StockLog struct {
	ID             int64
	ProductID      int64
	WarehouseID    int64
	PrincipalID    int64
	Action         StockAction
	QuantityChange int64
	Timestamp      time.Time
}
