package models

import (
	"encoding/json"
	"time"

	"storefront-core/colors"
	"storefront-core/stock"
)

// Product represents a product row. AvailableColors is kept raw because older rows
// store colors as names, hex strings or JSON-encoded objects.
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           int64           `json:"price"`
	StockCount      *int            `json:"stockCount"`
	AvailableColors json.RawMessage `json:"availableColors"`
	AvailableSizes  []string        `json:"availableSizes"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// StockLevel treats a missing stock count as zero
func (p Product) StockLevel() int {
	return stock.Count(p.StockCount)
}

// ProductCard is a product as the storefront shows it
type ProductCard struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          int64           `json:"price"`
	PriceFormatted string          `json:"priceFormatted"`
	StockCount     int             `json:"stockCount"`
	Colors         []colors.Swatch `json:"colors"`
	Sizes          []string        `json:"sizes"`
	Stock          stock.Status    `json:"stock"`
}

// StockLevel implements stock.Stocked
func (c ProductCard) StockLevel() int {
	return c.StockCount
}

// ProductListResponse wraps a list of cards
type ProductListResponse struct {
	Items []ProductCard `json:"items"`
}

// ColorListResponse is returned by the color endpoints
type ColorListResponse struct {
	ProductID int64           `json:"productId,omitempty"`
	Colors    []colors.Swatch `json:"colors"`
}

// UpdateStockRequest represents the request body for setting a product's stock
type UpdateStockRequest struct {
	StockCount *int `json:"stockCount"`
}
