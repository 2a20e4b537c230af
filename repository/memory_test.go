package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"storefront-core/models"
	"storefront-core/selection"
)

func intPtr(n int) *int { return &n }

func seedProduct(t *testing.T, store *MemoryStore, stock *int, active bool) *models.Product {
	t.Helper()
	p, err := store.Products().Create(context.Background(), &models.Product{
		Name:            "Raincoat",
		Price:           1000,
		StockCount:      stock,
		AvailableColors: json.RawMessage(`["Red","Blue"]`),
		AvailableSizes:  []string{"S", "M"},
		IsActive:        active,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return p
}

func newOrder(productID int64, qty int) *models.NewOrder {
	lines := []selection.Line{{Color: "Red", Size: "S", Quantity: qty, UnitPrice: 1000}}
	return &models.NewOrder{
		ID:        uuid.New(),
		ProductID: productID,
		OrderType: models.OrderTypeRetail,
		Lines:     lines,
		Totals:    selection.Totals{TotalQuantity: qty, TotalAmount: int64(qty) * 1000},
	}
}

func TestMemoryProductCopiesAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	p := seedProduct(t, store, intPtr(4), true)

	*p.StockCount = 99
	p.AvailableSizes[0] = "XXL"

	got, err := store.Products().GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got.StockCount != 4 || got.AvailableSizes[0] != "S" {
		t.Fatalf("stored product was mutated through a returned copy: %+v", got)
	}
}

func TestMemoryProductNotFound(t *testing.T) {
	_, err := NewMemoryStore().Products().GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v want ErrNotFound", err)
	}
}

func TestMemoryListActiveOnly(t *testing.T) {
	store := NewMemoryStore()
	seedProduct(t, store, intPtr(1), true)
	seedProduct(t, store, intPtr(1), false)

	all, _ := store.Products().List(context.Background(), false)
	active, _ := store.Products().List(context.Background(), true)
	if len(all) != 2 || len(active) != 1 {
		t.Fatalf("got %d all / %d active", len(all), len(active))
	}
}

func TestMemoryOrderReservesAndReleasesStock(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := seedProduct(t, store, intPtr(5), true)

	order, err := store.Orders().Create(ctx, newOrder(p.ID, 3))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Status != models.OrderStatusPending || len(order.Lines) != 1 {
		t.Fatalf("unexpected order %+v", order)
	}

	after, _ := store.Products().GetByID(ctx, p.ID)
	if after.StockLevel() != 2 {
		t.Fatalf("got stock %d want 2", after.StockLevel())
	}

	if _, err := store.Orders().Cancel(ctx, order.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	restored, _ := store.Products().GetByID(ctx, p.ID)
	if restored.StockLevel() != 5 {
		t.Fatalf("got stock %d want 5 after cancel", restored.StockLevel())
	}

	if _, err := store.Orders().Cancel(ctx, order.ID); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("second cancel: got %v want ErrInvalidStatus", err)
	}
}

func TestMemoryOrderRejectsShortStock(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := seedProduct(t, store, intPtr(2), true)
	nullStock := seedProduct(t, store, nil, true)
	inactive := seedProduct(t, store, intPtr(10), false)

	if _, err := store.Orders().Create(ctx, newOrder(p.ID, 3)); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("got %v want ErrInsufficientStock", err)
	}
	if _, err := store.Orders().Create(ctx, newOrder(nullStock.ID, 1)); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("null stock: got %v want ErrInsufficientStock", err)
	}
	if _, err := store.Orders().Create(ctx, newOrder(inactive.ID, 1)); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("got %v want ErrProductInactive", err)
	}
	if _, err := store.Orders().Create(ctx, newOrder(999, 1)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v want ErrNotFound", err)
	}
}

func TestMemoryApproveThenCancelIsRejected(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := seedProduct(t, store, intPtr(5), true)
	order, _ := store.Orders().Create(ctx, newOrder(p.ID, 1))

	approved, err := store.Orders().Approve(ctx, order.ID)
	if err != nil || approved.Status != models.OrderStatusApproved {
		t.Fatalf("Approve: %v %+v", err, approved)
	}
	if _, err := store.Orders().Cancel(ctx, order.ID); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("got %v want ErrInvalidStatus", err)
	}

	status := models.OrderStatusApproved
	orders, _ := store.Orders().List(ctx, &status)
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("unexpected list %+v", orders)
	}
}
