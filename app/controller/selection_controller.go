package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"storefront-core/models"
	"storefront-core/service"
)

// SelectionController computes the order summary of the product page grid
type SelectionController struct {
	service *service.SelectionService
}

// NewSelectionController creates a new SelectionController
func NewSelectionController(svc *service.SelectionService) *SelectionController {
	return &SelectionController{
		service: svc,
	}
}

// Summary handles POST /selections/summary
// Example request:
// POST /selections/summary
// {
//   "productId": 3,
//   "quantities": [
//     {"color": "Red", "size": "2.4", "quantity": 2},
//     {"color": "Blue", "size": "2.2", "quantity": 3}
//   ]
// }
// Example response:
// {
//   "productId": 3,
//   "selections": [...],
//   "subtotals": [{"color": "Red", "quantity": 2}, {"color": "Blue", "quantity": 3}],
//   "totalQuantity": 5,
//   "totalAmount": 125000,
//   "totalAmountFormatted": "$125.000"
// }
func (c *SelectionController) Summary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Summary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ Summary: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectionSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Summary: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ProductID <= 0 {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	summary, err := c.service.Summarize(r.Context(), req.ProductID, req.Quantities)
	if err != nil {
		writeError(w, "Summary", err)
		return
	}

	log.Printf("✅ Summary: product id=%d qty=%d total=%s", summary.ProductID, summary.TotalQuantity, summary.TotalAmountFormatted)
	writeJSON(w, "Summary", http.StatusOK, summary)
}

// Fill handles POST /selections/fill
// It overwrites the grid: every cell, or every color of one size when size is set.
// A quantity of 0 clears the grid.
func (c *SelectionController) Fill(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Fill: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectionFillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Fill: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ProductID <= 0 {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}
	if req.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}

	resp, err := c.service.Fill(r.Context(), req.ProductID, req.Quantity, req.Size)
	if err != nil {
		writeError(w, "Fill", err)
		return
	}

	writeJSON(w, "Fill", http.StatusOK, resp)
}
