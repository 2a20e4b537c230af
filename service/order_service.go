package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"storefront-core/models"
	"storefront-core/repository"
	"storefront-core/selection"
	"storefront-core/stock"
	"storefront-core/utils"
)

// OrderService turns a selection grid into a persisted order
type OrderService struct {
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepositoryInterface
	newID    func() uuid.UUID
}

// NewOrderService creates a new OrderService
func NewOrderService(products repository.ProductRepositoryInterface, orders repository.OrderRepositoryInterface) *OrderService {
	return &OrderService{products: products, orders: orders, newID: uuid.New}
}

var validOrderTypes = map[string]bool{
	models.OrderTypeRetail: true,
	models.OrderTypeBulk:   true,
}

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:  true,
	models.OrderStatusApproved: true,
	models.OrderStatusCanceled: true,
}

// Place validates the selection against the product, derives lines and totals at the
// product's single unit price and stores the order, reserving its quantity.
func (s *OrderService) Place(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderResponse, error) {
	orderType := strings.ToLower(strings.TrimSpace(req.OrderType))
	if orderType == "" {
		orderType = models.OrderTypeRetail
	}
	if !validOrderTypes[orderType] {
		return nil, fmt.Errorf("order type %q: %w", req.OrderType, ErrInvalidSelection)
	}

	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, fmt.Errorf("product %d: %w", p.ID, repository.ErrProductInactive)
	}

	status := stock.ClassifyNullable(p.StockCount)
	if status.Disabled {
		log.Printf("⚠️  Place: product id=%d is out of stock", p.ID)
		return nil, fmt.Errorf("product %d is out of stock: %w", p.ID, repository.ErrInsufficientStock)
	}

	grid, err := canonicalGrid(*p, req.Quantities)
	if err != nil {
		return nil, err
	}

	totals := selection.DeriveTotals(grid, p.Price)
	if totals.TotalQuantity == 0 {
		return nil, ErrEmptySelection
	}
	if totals.TotalQuantity > p.StockLevel() {
		return nil, fmt.Errorf("available %d, requested %d: %w", p.StockLevel(), totals.TotalQuantity, repository.ErrInsufficientStock)
	}

	colorOrder, sizeOrder := gridAxes(*p)
	order := &models.NewOrder{
		ID:            s.newID(),
		ProductID:     p.ID,
		OrderType:     orderType,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         strings.TrimSpace(req.Notes),
		Lines:         selection.Lines(grid, colorOrder, sizeOrder, p.Price),
		Totals:        totals,
	}
	log.Printf("💰 Place: product id=%d qty=%d total=%s", p.ID, totals.TotalQuantity, utils.FormatPrice(totals.TotalAmount))

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	created.TotalAmountFormatted = utils.FormatPrice(created.TotalAmount)
	return created, nil
}

// Get returns an order with its lines
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.TotalAmountFormatted = utils.FormatPrice(order.TotalAmount)
	return order, nil
}

// List returns orders, filtered by status when status is not empty
func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return s.orders.List(ctx, nil)
	}
	if !validOrderStatuses[status] {
		return nil, fmt.Errorf("status %q: %w", status, repository.ErrInvalidStatus)
	}
	return s.orders.List(ctx, &status)
}

// Approve confirms a pending order
func (s *OrderService) Approve(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orders.Approve(ctx, id)
}

// Cancel cancels a pending order and puts its quantity back in stock
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orders.Cancel(ctx, id)
}
