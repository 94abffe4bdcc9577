package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
)

func newCatalogFixture() (*mockCatalogRepo, *CatalogService) {
	catalog := newMockCatalogRepo()
	return catalog, NewCatalogService(catalog, zap.NewNop())
}

func TestCreateProduct_Success(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseID := catalog.addWarehouse(1)
	categoryID := catalog.addCategory(warehouseID)

	product, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 1}, categoryID, "Widget", "W-100", "a widget")
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.WarehouseID != warehouseID {
		t.Errorf("expected warehouse %d, got %d", warehouseID, product.WarehouseID)
	}
	if product.SKU != "W-100" {
		t.Errorf("expected SKU W-100, got %s", product.SKU)
	}
}

func TestCreateProduct_DuplicateSKUSameWarehouse(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseID := catalog.addWarehouse(1)
	categoryID := catalog.addCategory(warehouseID)
	principal := domain.Principal{ID: 1}

	if _, err := svc.CreateProduct(context.Background(), principal, categoryID, "Widget", "W-100", ""); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateProduct(context.Background(), principal, categoryID, "Widget 2", "W-100", "")
	if !errors.Is(err, ErrDuplicateSKU) {
		t.Errorf("expected ErrDuplicateSKU, got: %v", err)
	}
}

func TestCreateProduct_SameSKUOtherWarehouse(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseA := catalog.addWarehouse(1)
	categoryA := catalog.addCategory(warehouseA)
	warehouseB := catalog.addWarehouse(2)
	categoryB := catalog.addCategory(warehouseB)

	if _, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 1}, categoryA, "Widget", "W-100", ""); err != nil {
		t.Fatalf("create in warehouse A failed: %v", err)
	}

	// SKU uniqueness is scoped per warehouse; another tenant may reuse it.
	if _, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 2}, categoryB, "Widget", "W-100", ""); err != nil {
		t.Errorf("expected reuse across warehouses to succeed, got: %v", err)
	}
}

func TestCreateProduct_CategoryCrossTenant(t *testing.T) {
	catalog, svc := newCatalogFixture()
	catalog.addWarehouse(1)
	warehouseB := catalog.addWarehouse(2)
	categoryB := catalog.addCategory(warehouseB)

	_, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 1}, categoryB, "Widget", "W-100", "")
	if !errors.Is(err, ErrCrossTenantAccess) {
		t.Errorf("expected ErrCrossTenantAccess, got: %v", err)
	}
}

func TestCreateProduct_NoWarehouse(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseID := catalog.addWarehouse(1)
	categoryID := catalog.addCategory(warehouseID)

	_, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 2}, categoryID, "Widget", "W-100", "")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got: %v", err)
	}
}

func TestUpdateProduct_KeepOwnSKU(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseID := catalog.addWarehouse(1)
	categoryID := catalog.addCategory(warehouseID)
	principal := domain.Principal{ID: 1}

	product, err := svc.CreateProduct(context.Background(), principal, categoryID, "Widget", "W-100", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Rename keeping the same SKU must not collide with itself.
	updated, err := svc.UpdateProduct(context.Background(), principal, product.ID, categoryID, "Widget v2", "W-100", "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Widget v2" {
		t.Errorf("expected renamed product, got %s", updated.Name)
	}
}

func TestUpdateProduct_StealSKU(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseID := catalog.addWarehouse(1)
	categoryID := catalog.addCategory(warehouseID)
	principal := domain.Principal{ID: 1}

	if _, err := svc.CreateProduct(context.Background(), principal, categoryID, "Widget", "W-100", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other, err := svc.CreateProduct(context.Background(), principal, categoryID, "Gadget", "G-200", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateProduct(context.Background(), principal, other.ID, categoryID, "Gadget", "W-100", "")
	if !errors.Is(err, ErrDuplicateSKU) {
		t.Errorf("expected ErrDuplicateSKU, got: %v", err)
	}
}

func TestUpdateProduct_CrossTenant(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseA := catalog.addWarehouse(1)
	categoryA := catalog.addCategory(warehouseA)
	warehouseB := catalog.addWarehouse(2)
	categoryB := catalog.addCategory(warehouseB)

	product, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 1}, categoryA, "Widget", "W-100", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateProduct(context.Background(), domain.Principal{ID: 2}, product.ID, categoryB, "Widget", "W-100", "")
	if !errors.Is(err, ErrCrossTenantAccess) {
		t.Errorf("expected ErrCrossTenantAccess, got: %v", err)
	}
}

func TestCreateCategory_AutoAssignsWarehouse(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseID := catalog.addWarehouse(1)
	catalog.addWarehouse(1) // second warehouse; the first one wins

	category, err := svc.CreateCategory(context.Background(), domain.Principal{ID: 1}, "Electronics")
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if category.WarehouseID != warehouseID {
		t.Errorf("expected warehouse %d, got %d", warehouseID, category.WarehouseID)
	}
}

func TestCreateCategory_NoWarehouse(t *testing.T) {
	_, svc := newCatalogFixture()

	_, err := svc.CreateCategory(context.Background(), domain.Principal{ID: 1}, "Electronics")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got: %v", err)
	}
}

func TestListProducts_ScopedToOwner(t *testing.T) {
	catalog, svc := newCatalogFixture()
	warehouseA := catalog.addWarehouse(1)
	categoryA := catalog.addCategory(warehouseA)
	warehouseB := catalog.addWarehouse(2)
	categoryB := catalog.addCategory(warehouseB)

	if _, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 1}, categoryA, "Widget", "W-100", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), domain.Principal{ID: 2}, categoryB, "Gadget", "G-200", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	products, err := svc.ListProducts(context.Background(), domain.Principal{ID: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "W-100" {
		t.Errorf("expected only principal 1's product, got %+v", products)
	}
}
