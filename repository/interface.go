package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront-core/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrProductInactive   = errors.New("product inactive")
)

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	SetStock(ctx context.Context, id int64, stockCount *int) (*models.Product, error)
}

// OrderRepositoryInterface defines the contract for order repository operations.
// Create reserves stock on the product; Cancel releases it.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.NewOrder) (*models.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, error)
	List(ctx context.Context, status *string) ([]models.Order, error)
	Approve(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.Order, error)
}
