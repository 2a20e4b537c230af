package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"storefront-core/db"
	"storefront-core/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, name, description, price, stock_count, available_colors, available_sizes, is_active, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var stockCount sql.NullInt64
	var colorsRaw, sizesRaw []byte

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &stockCount, &colorsRaw, &sizesRaw, &p.IsActive, &p.CreatedAt); err != nil {
		return nil, err
	}

	if stockCount.Valid {
		n := int(stockCount.Int64)
		p.StockCount = &n
	}
	p.AvailableColors = json.RawMessage(colorsRaw)
	if len(sizesRaw) > 0 {
		if err := json.Unmarshal(sizesRaw, &p.AvailableSizes); err != nil {
			log.Printf("⚠️  scanProduct: product id=%d has unreadable sizes: %v", p.ID, err)
		}
	}
	if p.AvailableSizes == nil {
		p.AvailableSizes = []string{}
	}
	return &p, nil
}

// List retrieves products ordered by creation date, newest first
func (r *ProductRepository) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	log.Printf("🔍 List: Fetching products activeOnly=%v", activeOnly)

	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error fetching products: %v", err)
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ List: Error iterating products: %v", err)
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ List: Successfully fetched %d products", len(products))
	return products, nil
}

// GetByID retrieves a single product
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching product id=%d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

// Create inserts a product
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	log.Printf("📦 Create: Creating product name=%s", p.Name)

	colorsJSON := string(p.AvailableColors)
	if colorsJSON == "" {
		colorsJSON = "[]"
	}
	sizes := p.AvailableSizes
	if sizes == nil {
		sizes = []string{}
	}
	sizesJSON, err := json.Marshal(sizes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sizes: %w", err)
	}

	var stockCount sql.NullInt64
	if p.StockCount != nil {
		stockCount = sql.NullInt64{Int64: int64(*p.StockCount), Valid: true}
	}

	query := `
		INSERT INTO products (name, description, price, stock_count, available_colors, available_sizes, is_active)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7)
		RETURNING ` + productColumns

	created, err := scanProduct(db.DB.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, stockCount, colorsJSON, string(sizesJSON), p.IsActive))
	if err != nil {
		log.Printf("❌ Create: Error inserting product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Create: Successfully created product id=%d", created.ID)
	return created, nil
}

// SetStock overwrites the stock count. A nil count stores NULL.
func (r *ProductRepository) SetStock(ctx context.Context, id int64, stockCount *int) (*models.Product, error) {
	log.Printf("📦 SetStock: product id=%d stock=%v", id, stockCount)

	var value sql.NullInt64
	if stockCount != nil {
		value = sql.NullInt64{Int64: int64(*stockCount), Valid: true}
	}

	query := `UPDATE products SET stock_count = $1 WHERE id = $2 RETURNING ` + productColumns
	p, err := scanProduct(db.DB.QueryRowContext(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ SetStock: Error updating stock: %v", err)
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	log.Printf("✓ SetStock: product id=%d now has stock=%d", p.ID, p.StockLevel())
	return p, nil
}
