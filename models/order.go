package models

import (
	"time"

	"github.com/google/uuid"

	"storefront-core/selection"
)

// Order statuses
const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
	OrderStatusCanceled = "canceled"
)

// Order types
const (
	OrderTypeRetail = "retail"
	OrderTypeBulk   = "bulk"
)

// Order represents a placed order
type Order struct {
	ID            uuid.UUID `json:"id"`
	ProductID     int64     `json:"productId"`
	Status        string    `json:"status"`
	OrderType     string    `json:"orderType"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	TotalQuantity int       `json:"totalQuantity"`
	TotalAmount   int64     `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OrderLine represents one color/size line of an order
type OrderLine struct {
	ID        int64     `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Qty       int       `json:"qty"`
	UnitPrice int64     `json:"unitPrice"`
}

// Subtotal returns qty x unit price
func (l OrderLine) Subtotal() int64 {
	return int64(l.Qty) * l.UnitPrice
}

// OrderResponse is an order with its lines
type OrderResponse struct {
	Order
	Lines                []OrderLine `json:"lines"`
	TotalAmountFormatted string      `json:"totalAmountFormatted"`
}

// OrderListResponse represents the list of orders
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// PlaceOrderRequest represents the request body for placing an order from a selection grid
type PlaceOrderRequest struct {
	ProductID     int64             `json:"productId"`
	OrderType     string            `json:"orderType"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Notes         string            `json:"notes"`
	Quantities    []selection.Entry `json:"quantities"`
}

// NewOrder is what the service hands to the order repository
type NewOrder struct {
	ID            uuid.UUID
	ProductID     int64
	OrderType     string
	CustomerName  string
	CustomerPhone string
	Notes         string
	Lines         []selection.Line
	Totals        selection.Totals
}
