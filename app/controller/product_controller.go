package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"storefront-core/models"
	"storefront-core/service"
)

// ProductController handles HTTP requests for product cards and colors
type ProductController struct {
	service *service.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(svc *service.ProductService) *ProductController {
	return &ProductController{
		service: svc,
	}
}

// ListProducts handles GET /products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListProducts: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cards, err := c.service.List(r.Context())
	if err != nil {
		writeError(w, "ListProducts", err)
		return
	}

	log.Printf("✅ ListProducts: Returning %d products", len(cards))
	writeJSON(w, "ListProducts", http.StatusOK, models.ProductListResponse{Items: cards})
}

// LastFewLeft handles GET /products/last-few-left
// Example response:
// {
//   "items": [
//     {"id": 3, "name": "Raincoat", "stockCount": 2, "stock": {"tier": "last_few_left", ...}, ...}
//   ]
// }
// An empty list means the storefront hides the section.
func (c *ProductController) LastFewLeft(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 LastFewLeft: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ LastFewLeft: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cards, err := c.service.LastFewLeft(r.Context())
	if err != nil {
		writeError(w, "LastFewLeft", err)
		return
	}

	writeJSON(w, "LastFewLeft", http.StatusOK, models.ProductListResponse{Items: cards})
}

// GetProduct handles GET /products/{id}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProduct: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments := pathSegments(r.URL.Path, "/products/")
	if len(segments) != 1 {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	id, ok := parseProductID(segments[0])
	if !ok {
		log.Printf("❌ GetProduct: Invalid product id: %s", segments[0])
		http.Error(w, "invalid product id parameter", http.StatusBadRequest)
		return
	}

	card, err := c.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, "GetProduct", err)
		return
	}

	log.Printf("✅ GetProduct: Found product id=%d tier=%s", card.ID, card.Stock.Tier)
	writeJSON(w, "GetProduct", http.StatusOK, card)
}

// GetColors handles GET /products/{id}/colors
func (c *ProductController) GetColors(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetColors: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /products/{id}/colors
	segments := pathSegments(r.URL.Path, "/products/")
	if len(segments) != 2 || segments[1] != "colors" {
		http.Error(w, "invalid path format", http.StatusNotFound)
		return
	}
	id, ok := parseProductID(segments[0])
	if !ok {
		http.Error(w, "invalid product id parameter", http.StatusBadRequest)
		return
	}

	list, err := c.service.Colors(r.Context(), id)
	if err != nil {
		writeError(w, "GetColors", err)
		return
	}

	writeJSON(w, "GetColors", http.StatusOK, models.ColorListResponse{ProductID: id, Colors: list})
}

// Palette handles GET /admin/colors
// It returns the master palette merged with every color configured on a product.
func (c *ProductController) Palette(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Palette: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := c.service.Palette(r.Context())
	if err != nil {
		writeError(w, "Palette", err)
		return
	}

	log.Printf("✅ Palette: Returning %d colors", len(list))
	writeJSON(w, "Palette", http.StatusOK, models.ColorListResponse{Colors: list})
}

// SetStock handles POST /admin/products/{id}/stock
// Example request:
// POST /admin/products/3/stock
// {
//   "stockCount": 12
// }
// A null stockCount clears the count, which the storefront shows as out of stock.
func (c *ProductController) SetStock(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SetStock: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ SetStock: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments := pathSegments(r.URL.Path, "/admin/products/")
	if len(segments) != 2 || segments[1] != "stock" {
		http.Error(w, "invalid path format", http.StatusNotFound)
		return
	}
	id, ok := parseProductID(segments[0])
	if !ok {
		http.Error(w, "invalid product id parameter", http.StatusBadRequest)
		return
	}

	var req models.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetStock: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	card, err := c.service.SetStock(context.WithoutCancel(r.Context()), id, req.StockCount)
	if err != nil {
		writeError(w, "SetStock", err)
		return
	}

	log.Printf("✅ SetStock: product id=%d stock=%d", card.ID, card.StockCount)
	writeJSON(w, "SetStock", http.StatusOK, card)
}
