package models

import "storefront-core/selection"

// SelectionSummaryRequest represents the grid state sent by the product page
type SelectionSummaryRequest struct {
	ProductID  int64             `json:"productId"`
	Quantities []selection.Entry `json:"quantities"`
}

// SelectionSummaryResponse is the order summary panel
type SelectionSummaryResponse struct {
	ProductID int64 `json:"productId"`
	selection.Summary
	TotalAmountFormatted string `json:"totalAmountFormatted"`
}

// SelectionFillRequest sets every cell (or one size column) to the same quantity
type SelectionFillRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// SelectionFillResponse returns the grid after the overwrite
type SelectionFillResponse struct {
	ProductID  int64             `json:"productId"`
	Quantities []selection.Entry `json:"quantities"`
	selection.Totals
}
