package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
)

func (m *MySQLAdapter) FirstWarehouseByOwner(ctx context.Context, ownerID int64) (*domain.Warehouse, error) {
	var w domain.Warehouse
	err := m.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, location
		FROM warehouses WHERE owner_user_id = ?
		ORDER BY id LIMIT 1`, ownerID,
	).Scan(&w.ID, &w.OwnerID, &w.Name, &w.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query warehouse: %w", err)
	}
	return &w, nil
}

func (m *MySQLAdapter) GetWarehouse(ctx context.Context, warehouseID int64) (*domain.Warehouse, error) {
	var w domain.Warehouse
	err := m.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, location
		FROM warehouses WHERE id = ?`, warehouseID,
	).Scan(&w.ID, &w.OwnerID, &w.Name, &w.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query warehouse: %w", err)
	}
	return &w, nil
}

func (m *MySQLAdapter) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	var c domain.Category
	err := m.db.QueryRowContext(ctx, `
		SELECT id, warehouse_id, name
		FROM categories WHERE id = ?`, categoryID,
	).Scan(&c.ID, &c.WarehouseID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &c, nil
}

// GetProduct resolves the product's warehouse through its category.
func (m *MySQLAdapter) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var p domain.Product
	var description sql.NullString
	err := m.db.QueryRowContext(ctx, `
		SELECT p.id, p.category_id, c.warehouse_id, p.name, p.sku, p.description
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?`, productID,
	).Scan(&p.ID, &p.CategoryID, &p.WarehouseID, &p.Name, &p.SKU, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	p.Description = description.String
	return &p, nil
}

func (m *MySQLAdapter) CountSKU(ctx context.Context, warehouseID int64, sku string, excludeProductID int64) (int64, error) {
	var n int64
	err := m.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE c.warehouse_id = ? AND p.sku = ? AND p.id <> ?`,
		warehouseID, sku, excludeProductID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sku: %w", err)
	}
	return n, nil
}

func (m *MySQLAdapter) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	res, err := m.db.ExecContext(ctx, `
		INSERT INTO categories (warehouse_id, name) VALUES (?, ?)`,
		category.WarehouseID, category.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	category.ID, _ = res.LastInsertId()
	return &category, nil
}

func (m *MySQLAdapter) ListCategories(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT c.id, c.warehouse_id, c.name
		FROM categories c
		JOIN warehouses w ON w.id = c.warehouse_id
		WHERE w.owner_user_id = ?
		ORDER BY c.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.WarehouseID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (m *MySQLAdapter) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	res, err := m.db.ExecContext(ctx, `
		INSERT INTO products (category_id, name, sku, description) VALUES (?, ?, ?, ?)`,
		product.CategoryID, product.Name, product.SKU, product.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	product.ID, _ = res.LastInsertId()
	return &product, nil
}

func (m *MySQLAdapter) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	_, err := m.db.ExecContext(ctx, `
		UPDATE products SET category_id = ?, name = ?, sku = ?, description = ?
		WHERE id = ?`,
		product.CategoryID, product.Name, product.SKU, product.Description, product.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &product, nil
}

func (m *MySQLAdapter) ListProducts(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT p.id, p.category_id, c.warehouse_id, p.name, p.sku, p.description
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN warehouses w ON w.id = c.warehouse_id
		WHERE w.owner_user_id = ?
		ORDER BY p.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.WarehouseID, &p.Name, &p.SKU, &description); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Description = description.String
		products = append(products, p)
	}
	return products, rows.Err()
}
