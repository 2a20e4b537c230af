package models

import "html/template"

// CatalogSwatch is a color chip on the low-stock sheet
type CatalogSwatch struct {
	Name  string       `json:"name"`
	Style template.CSS `json:"style"`
}

// CatalogItem represents a single product on the low-stock sheet
type CatalogItem struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	PriceFormatted string          `json:"priceFormatted"`
	StockCount     int             `json:"stockCount"`
	Message        string          `json:"message"`
	Sizes          []string        `json:"sizes"`
	Swatches       []CatalogSwatch `json:"swatches"`
}

// CatalogData represents the data structure passed to the catalog template
type CatalogData struct {
	Title       string          `json:"title"`
	GeneratedAt string          `json:"generatedAt"`
	Pages       [][]CatalogItem `json:"pages"`
	PageCount   int             `json:"pageCount"`
}
