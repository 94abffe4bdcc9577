package domain

type Warehouse struct {
	ID       int64
	OwnerID  int64
	Name     string
	Location string
}

type Category struct {
	ID          int64
	WarehouseID int64
	Name        string
}
