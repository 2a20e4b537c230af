package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-core/models"
)

// MemoryStore keeps products and orders in process. It backs memory mode when no
// database is configured, and the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]models.Product
	orders   map[uuid.UUID]models.OrderResponse
	now      func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]models.Product),
		orders:   make(map[uuid.UUID]models.OrderResponse),
		now:      time.Now,
	}
}

// Products returns a product repository backed by the store
func (s *MemoryStore) Products() *MemoryProductRepository {
	return &MemoryProductRepository{store: s}
}

// Orders returns an order repository backed by the store
func (s *MemoryStore) Orders() *MemoryOrderRepository {
	return &MemoryOrderRepository{store: s}
}

// MemoryProductRepository implements ProductRepositoryInterface in memory
type MemoryProductRepository struct {
	store *MemoryStore
}

var _ ProductRepositoryInterface = (*MemoryProductRepository)(nil)

func copyProduct(p models.Product) models.Product {
	if p.StockCount != nil {
		n := *p.StockCount
		p.StockCount = &n
	}
	p.AvailableColors = append(json.RawMessage(nil), p.AvailableColors...)
	p.AvailableSizes = append([]string{}, p.AvailableSizes...)
	return p
}

func (r *MemoryProductRepository) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]models.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if activeOnly && !p.IsActive {
			continue
		}
		products = append(products, copyProduct(p))
	}
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})
	return products, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextID++
	created := copyProduct(*p)
	created.ID = r.store.nextID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = r.store.now()
	}
	if len(created.AvailableColors) == 0 {
		created.AvailableColors = json.RawMessage("[]")
	}
	r.store.products[created.ID] = created

	log.Printf("📦 Create: Stored product id=%d name=%s in memory", created.ID, created.Name)
	out := copyProduct(created)
	return &out, nil
}

func (r *MemoryProductRepository) SetStock(ctx context.Context, id int64, stockCount *int) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	p.StockCount = nil
	if stockCount != nil {
		n := *stockCount
		p.StockCount = &n
	}
	r.store.products[id] = p
	out := copyProduct(p)
	return &out, nil
}

// MemoryOrderRepository implements OrderRepositoryInterface in memory
type MemoryOrderRepository struct {
	store *MemoryStore
}

var _ OrderRepositoryInterface = (*MemoryOrderRepository)(nil)

func copyOrder(o models.OrderResponse) *models.OrderResponse {
	o.Lines = append([]models.OrderLine{}, o.Lines...)
	return &o
}

func (r *MemoryOrderRepository) Create(ctx context.Context, req *models.NewOrder) (*models.OrderResponse, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[req.ProductID]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", req.ProductID, ErrNotFound)
	}
	if !p.IsActive {
		return nil, fmt.Errorf("product %d: %w", req.ProductID, ErrProductInactive)
	}
	available := p.StockLevel()
	if p.StockCount == nil || available < req.Totals.TotalQuantity {
		return nil, fmt.Errorf("available %d, requested %d: %w", available, req.Totals.TotalQuantity, ErrInsufficientStock)
	}

	remaining := available - req.Totals.TotalQuantity
	p.StockCount = &remaining
	r.store.products[p.ID] = p

	now := r.store.now()
	order := models.OrderResponse{
		Order: models.Order{
			ID:            req.ID,
			ProductID:     req.ProductID,
			Status:        models.OrderStatusPending,
			OrderType:     req.OrderType,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
			TotalQuantity: req.Totals.TotalQuantity,
			TotalAmount:   req.Totals.TotalAmount,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		Lines: make([]models.OrderLine, 0, len(req.Lines)),
	}
	for i, l := range req.Lines {
		order.Lines = append(order.Lines, models.OrderLine{
			ID:        int64(i + 1),
			OrderID:   req.ID,
			Color:     l.Color,
			Size:      l.Size,
			Qty:       l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	r.store.orders[order.ID] = order
	return copyOrder(order), nil
}

func (r *MemoryOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return copyOrder(o), nil
}

func (r *MemoryOrderRepository) List(ctx context.Context, status *string) ([]models.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range r.store.orders {
		if status != nil && *status != "" && o.Status != *status {
			continue
		}
		orders = append(orders, o.Order)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID.String() < orders[j].ID.String()
	})
	return orders, nil
}

func (r *MemoryOrderRepository) Approve(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if o.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", id, o.Status, ErrInvalidStatus)
	}
	o.Status = models.OrderStatusApproved
	o.UpdatedAt = r.store.now()
	r.store.orders[id] = o
	out := o.Order
	return &out, nil
}

func (r *MemoryOrderRepository) Cancel(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if o.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", id, o.Status, ErrInvalidStatus)
	}

	if p, ok := r.store.products[o.ProductID]; ok {
		restored := p.StockLevel() + o.TotalQuantity
		p.StockCount = &restored
		r.store.products[p.ID] = p
	}

	o.Status = models.OrderStatusCanceled
	o.UpdatedAt = r.store.now()
	r.store.orders[id] = o
	out := o.Order
	return &out, nil
}
