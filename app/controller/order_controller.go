package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"storefront-core/models"
	"storefront-core/repository"
	"storefront-core/service"
)

// OrderController handles HTTP requests for orders
type OrderController struct {
	service *service.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(svc *service.OrderService) *OrderController {
	return &OrderController{
		service: svc,
	}
}

// PlaceOrder handles POST /orders
// Example request:
// POST /orders
// {
//   "productId": 3,
//   "orderType": "retail",
//   "customerName": "Ana",
//   "customerPhone": "+573001112233",
//   "quantities": [{"color": "Red", "size": "2.4", "quantity": 2}]
// }
// The order is created as pending and its quantity is reserved from stock.
func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 PlaceOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ PlaceOrder: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ PlaceOrder: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ProductID <= 0 {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	order, err := c.service.Place(context.WithoutCancel(r.Context()), &req)
	if err != nil {
		writeError(w, "PlaceOrder", err)
		return
	}

	log.Printf("✅ PlaceOrder: Successfully created order id=%s lines=%d", order.ID, len(order.Lines))
	writeJSON(w, "PlaceOrder", http.StatusCreated, order)
}

// GetOrder handles GET /orders/{id}
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments := pathSegments(r.URL.Path, "/orders/")
	if len(segments) != 1 {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	id, err := uuid.Parse(segments[0])
	if err != nil {
		log.Printf("❌ GetOrder: Invalid order id: %s", segments[0])
		http.Error(w, "invalid order id parameter", http.StatusBadRequest)
		return
	}

	order, err := c.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, "GetOrder", err)
		return
	}

	writeJSON(w, "GetOrder", http.StatusOK, order)
}

// ListOrders handles GET /admin/orders?status=pending
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListOrders: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := r.URL.Query().Get("status")
	orders, err := c.service.List(r.Context(), status)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidStatus) {
			log.Printf("❌ ListOrders: Invalid status filter: %s", status)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "ListOrders", err)
		return
	}

	log.Printf("✅ ListOrders: Returning %d orders", len(orders))
	writeJSON(w, "ListOrders", http.StatusOK, models.OrderListResponse{Orders: orders})
}

// ApproveOrder handles POST /admin/orders/{id}/approve
func (c *OrderController) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, "ApproveOrder", "approve", c.service.Approve)
}

// CancelOrder handles POST /admin/orders/{id}/cancel
// Cancelling puts the reserved quantity back in stock.
func (c *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, "CancelOrder", "cancel", c.service.Cancel)
}

func (c *OrderController) transition(w http.ResponseWriter, r *http.Request, op, action string, apply func(context.Context, uuid.UUID) (*models.Order, error)) {
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ %s: Method not allowed: %s", op, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/orders/{id}/{action}
	segments := pathSegments(r.URL.Path, "/admin/orders/")
	if len(segments) != 2 || segments[1] != action {
		http.Error(w, "invalid path format", http.StatusNotFound)
		return
	}
	id, err := uuid.Parse(segments[0])
	if err != nil {
		http.Error(w, "invalid order id parameter", http.StatusBadRequest)
		return
	}

	order, err := apply(context.WithoutCancel(r.Context()), id)
	if err != nil {
		writeError(w, op, err)
		return
	}

	log.Printf("✅ %s: order id=%s status=%s", op, order.ID, order.Status)
	writeJSON(w, op, http.StatusOK, order)
}
