package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"storefront-core/db"
	"storefront-core/models"
)

// OrderRepository handles database operations for orders
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

const orderColumns = `id, product_id, status, order_type, customer_name, customer_phone, notes,
	total_quantity, total_amount, created_at, updated_at`

func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order
	var customerName, customerPhone, notes sql.NullString
	err := row.Scan(
		&o.ID,
		&o.ProductID,
		&o.Status,
		&o.OrderType,
		&customerName,
		&customerPhone,
		&notes,
		&o.TotalQuantity,
		&o.TotalAmount,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.CustomerName = customerName.String
	o.CustomerPhone = customerPhone.String
	o.Notes = notes.String
	return &o, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create places an order and reserves its quantity on the product in one transaction
func (r *OrderRepository) Create(ctx context.Context, req *models.NewOrder) (*models.OrderResponse, error) {
	log.Printf("📦 Create: Placing order product_id=%d qty=%d", req.ProductID, req.Totals.TotalQuantity)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Create: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the product row so concurrent orders see the reserved stock
	var stockCount sql.NullInt64
	var isActive bool
	queryProduct := `SELECT stock_count, is_active FROM products WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, queryProduct, req.ProductID).Scan(&stockCount, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("❌ Create: Product not found: id=%d", req.ProductID)
			return nil, fmt.Errorf("product %d: %w", req.ProductID, ErrNotFound)
		}
		log.Printf("❌ Create: Error fetching product: %v", err)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if !isActive {
		log.Printf("❌ Create: Product is not active: id=%d", req.ProductID)
		return nil, fmt.Errorf("product %d: %w", req.ProductID, ErrProductInactive)
	}

	available := int(stockCount.Int64)
	if !stockCount.Valid || available < req.Totals.TotalQuantity {
		log.Printf("❌ Create: Insufficient stock: available=%d, requested=%d", available, req.Totals.TotalQuantity)
		return nil, fmt.Errorf("available %d, requested %d: %w", available, req.Totals.TotalQuantity, ErrInsufficientStock)
	}

	queryInsertOrder := `
		INSERT INTO orders (id, product_id, status, order_type, customer_name, customer_phone, notes, total_quantity, total_amount)
		VALUES ($1, $2, 'pending', $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	order, err := scanOrder(tx.QueryRowContext(ctx, queryInsertOrder,
		req.ID,
		req.ProductID,
		req.OrderType,
		nullString(req.CustomerName),
		nullString(req.CustomerPhone),
		nullString(req.Notes),
		req.Totals.TotalQuantity,
		req.Totals.TotalAmount,
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	queryInsertLine := `
		INSERT INTO order_lines (order_id, color, size, qty, unit_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	lines := make([]models.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		line := models.OrderLine{OrderID: order.ID, Color: l.Color, Size: l.Size, Qty: l.Quantity, UnitPrice: l.UnitPrice}
		if err := tx.QueryRowContext(ctx, queryInsertLine, order.ID, l.Color, l.Size, l.Quantity, l.UnitPrice).Scan(&line.ID); err != nil {
			log.Printf("❌ Create: Error inserting line color=%s size=%s: %v", l.Color, l.Size, err)
			return nil, fmt.Errorf("failed to create order line: %w", err)
		}
		lines = append(lines, line)
	}

	queryReserve := `UPDATE products SET stock_count = stock_count - $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, queryReserve, req.Totals.TotalQuantity, req.ProductID); err != nil {
		log.Printf("❌ Create: Error reserving stock: %v", err)
		return nil, fmt.Errorf("failed to reserve stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Create: Error committing transaction: %v", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Create: Successfully placed order id=%s lines=%d", order.ID, len(lines))
	return &models.OrderResponse{Order: *order, Lines: lines}, nil
}

// GetByID retrieves an order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, error) {
	log.Printf("📦 GetByID: Fetching order id=%s", id)

	order, err := scanOrder(db.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("❌ GetByID: Order not found: id=%s", id)
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching order: %v", err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	queryLines := `
		SELECT id, order_id, color, size, qty, unit_price
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id ASC
	`
	rows, err := db.DB.QueryContext(ctx, queryLines, id)
	if err != nil {
		log.Printf("❌ GetByID: Error fetching lines: %v", err)
		return nil, fmt.Errorf("failed to fetch order lines: %w", err)
	}
	defer rows.Close()

	lines := []models.OrderLine{}
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.Color, &line.Size, &line.Qty, &line.UnitPrice); err != nil {
			log.Printf("❌ GetByID: Error scanning line: %v", err)
			continue
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ GetByID: Error iterating lines: %v", err)
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return &models.OrderResponse{Order: *order, Lines: lines}, nil
}

// List retrieves orders, newest first, optionally filtered by status
func (r *OrderRepository) List(ctx context.Context, status *string) ([]models.Order, error) {
	log.Printf("📦 List: Fetching orders with status=%v", status)

	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	if status != nil && *status != "" {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ List: Error fetching orders: %v", err)
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning order: %v", err)
			continue
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ List: Error iterating orders: %v", err)
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	log.Printf("✅ List: Successfully fetched %d orders", len(orders))
	return orders, nil
}

// Approve moves a pending order to approved. The reserved stock stays taken.
func (r *OrderRepository) Approve(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	log.Printf("📦 Approve: Approving order id=%s", id)

	query := `
		UPDATE orders SET status = 'approved', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + orderColumns

	order, err := scanOrder(db.DB.QueryRowContext(ctx, query, id))
	if err == nil {
		log.Printf("✅ Approve: Successfully approved order id=%s", id)
		return order, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("❌ Approve: Error updating order: %v", err)
		return nil, fmt.Errorf("failed to approve order: %w", err)
	}
	return nil, r.statusError(ctx, id)
}

// Cancel cancels a pending order and releases its reserved stock
func (r *OrderRepository) Cancel(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	log.Printf("📦 Cancel: Canceling order id=%s", id)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Cancel: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	var productID int64
	var qty int
	queryOrder := `SELECT status, product_id, total_quantity FROM orders WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, queryOrder, id).Scan(&status, &productID, &qty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("❌ Cancel: Order not found: id=%s", id)
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		log.Printf("❌ Cancel: Error fetching order: %v", err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	if status != models.OrderStatusPending {
		log.Printf("❌ Cancel: Order not pending: status=%s", status)
		return nil, fmt.Errorf("order %s is %s: %w", id, status, ErrInvalidStatus)
	}

	queryRelease := `UPDATE products SET stock_count = COALESCE(stock_count, 0) + $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, queryRelease, qty, productID); err != nil {
		log.Printf("❌ Cancel: Error releasing stock for product_id=%d: %v", productID, err)
		return nil, fmt.Errorf("failed to release stock reservation: %w", err)
	}

	queryUpdate := `
		UPDATE orders SET status = 'canceled', updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns
	order, err := scanOrder(tx.QueryRowContext(ctx, queryUpdate, id))
	if err != nil {
		log.Printf("❌ Cancel: Error updating order: %v", err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Cancel: Error committing transaction: %v", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Cancel: Successfully canceled order id=%s released=%d", id, qty)
	return order, nil
}

// statusError tells a missing order apart from one in the wrong status
func (r *OrderRepository) statusError(ctx context.Context, id uuid.UUID) error {
	var status string
	err := db.DB.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	return fmt.Errorf("order %s is %s: %w", id, status, ErrInvalidStatus)
}
