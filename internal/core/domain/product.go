package domain

// WarehouseID is resolved through the product's category; a product belongs to
// exactly one warehouse.
type Product struct {
	ID          int64
	CategoryID  int64
	WarehouseID int64
	Name        string
	SKU         string
	Description string
}
