package port

import (
	"context"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
)

// Lookup methods return nil without error when the record does not exist.
type CatalogRepository interface {
	// FirstWarehouseByOwner resolves the principal's write context: the first
	// warehouse owned by ownerID, or nil when none is assigned.
	FirstWarehouseByOwner(ctx context.Context, ownerID int64) (*domain.Warehouse, error)

	GetWarehouse(ctx context.Context, warehouseID int64) (*domain.Warehouse, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)

	// CountSKU counts non-deleted products carrying sku inside warehouseID,
	// excluding excludeProductID (0 excludes nothing).
	CountSKU(ctx context.Context, warehouseID int64, sku string, excludeProductID int64) (int64, error)

	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context, ownerID int64) ([]domain.Category, error)

	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, ownerID int64) ([]domain.Product, error)
}
