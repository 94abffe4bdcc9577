package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

var ErrDuplicateSKU = errors.New("sku already exists in this warehouse")

// CatalogService owns category and product writes. The only invariant with
// teeth here is SKU uniqueness, which is scoped per warehouse: two warehouses
// may reuse a SKU, one warehouse may not.
type CatalogService struct {
	catalog port.CatalogRepository
	logger  *zap.Logger
}

func NewCatalogService(catalog port.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

// CreateCategory creates a category auto-assigned to the principal's warehouse.
func (s *CatalogService) CreateCategory(ctx context.Context, principal domain.Principal, name string) (*domain.Category, error) {
	warehouse, err := s.catalog.FirstWarehouseByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, ErrNotAuthorized
	}
	return s.catalog.CreateCategory(ctx, domain.Category{
		WarehouseID: warehouse.ID,
		Name:        name,
	})
}

func (s *CatalogService) ListCategories(ctx context.Context, principal domain.Principal) ([]domain.Category, error) {
	return s.catalog.ListCategories(ctx, principal.ID)
}

func (s *CatalogService) CreateProduct(ctx context.Context, principal domain.Principal, categoryID int64, name, sku, description string) (*domain.Product, error) {
	warehouse, category, err := s.resolveCategory(ctx, principal, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSKU(ctx, warehouse.ID, sku, 0); err != nil {
		return nil, err
	}
	return s.catalog.CreateProduct(ctx, domain.Product{
		CategoryID:  category.ID,
		WarehouseID: warehouse.ID,
		Name:        name,
		SKU:         sku,
		Description: description,
	})
}

func (s *CatalogService) UpdateProduct(ctx context.Context, principal domain.Principal, productID, categoryID int64, name, sku, description string) (*domain.Product, error) {
	existing, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	warehouse, category, err := s.resolveCategory(ctx, principal, categoryID)
	if err != nil {
		return nil, err
	}
	if existing.WarehouseID != warehouse.ID {
		return nil, ErrCrossTenantAccess
	}
	if err := s.checkSKU(ctx, warehouse.ID, sku, productID); err != nil {
		return nil, err
	}
	return s.catalog.UpdateProduct(ctx, domain.Product{
		ID:          productID,
		CategoryID:  category.ID,
		WarehouseID: warehouse.ID,
		Name:        name,
		SKU:         sku,
		Description: description,
	})
}

func (s *CatalogService) ListProducts(ctx context.Context, principal domain.Principal) ([]domain.Product, error) {
	return s.catalog.ListProducts(ctx, principal.ID)
}

// resolveCategory checks that the principal has a warehouse and that the
// target category lives in it.
func (s *CatalogService) resolveCategory(ctx context.Context, principal domain.Principal, categoryID int64) (*domain.Warehouse, *domain.Category, error) {
	warehouse, err := s.catalog.FirstWarehouseByOwner(ctx, principal.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, nil, ErrNotAuthorized
	}

	category, err := s.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return nil, nil, ErrNotFound
	}
	if category.WarehouseID != warehouse.ID {
		return nil, nil, ErrCrossTenantAccess
	}
	return warehouse, category, nil
}

func (s *CatalogService) checkSKU(ctx context.Context, warehouseID int64, sku string, excludeProductID int64) error {
	n, err := s.catalog.CountSKU(ctx, warehouseID, sku, excludeProductID)
	if err != nil {
		return fmt.Errorf("sku check: %w", err)
	}
	if n > 0 {
		return ErrDuplicateSKU
	}
	return nil
}
