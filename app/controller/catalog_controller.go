package controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"storefront-core/service"
)

// CatalogController serves the printable "last few left" sheet
type CatalogController struct {
	catalogService *service.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// validFormats is a map of valid format values
var validFormats = map[string]bool{
	"html": true,
	"pdf":  true,
}

// LastFewLeft handles GET /catalog/last-few-left?format=html|pdf
// format defaults to html.
func (c *CatalogController) LastFewLeft(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CatalogLastFewLeft: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ CatalogLastFewLeft: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "html"
	}
	if !validFormats[format] {
		log.Printf("❌ CatalogLastFewLeft: Invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: html, pdf", http.StatusBadRequest)
		return
	}

	data, err := c.catalogService.LastFewLeftSheet(r.Context())
	if err != nil {
		writeError(w, "CatalogLastFewLeft", err)
		return
	}
	if data.PageCount == 0 {
		log.Printf("⚠️  CatalogLastFewLeft: No products are almost sold out")
	}

	switch format {
	case "html":
		htmlContent, err := c.catalogService.RenderCatalogHTML(data)
		if err != nil {
			log.Printf("❌ CatalogLastFewLeft: Error rendering HTML: %v", err)
			http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(htmlContent)); err != nil {
			log.Printf("❌ CatalogLastFewLeft: Error writing HTML response: %v", err)
		}

	case "pdf":
		pdfData, err := c.catalogService.GeneratePDF(r.Context(), data)
		if err != nil {
			log.Printf("❌ CatalogLastFewLeft: Error generating PDF: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("last_few_left_%s.pdf", data.GeneratedAt)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfData); err != nil {
			log.Printf("❌ CatalogLastFewLeft: Error writing PDF response: %v", err)
		}
	}
}
