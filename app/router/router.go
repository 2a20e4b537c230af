package router

import (
	"net/http"
	"strings"

	"storefront-core/app/controller"
)

type Controllers struct {
	Product   *controller.ProductController
	Selection *controller.SelectionController
	Order     *controller.OrderController
	Catalog   *controller.CatalogController
	Swatch    *controller.SwatchController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Product routes
	mux.HandleFunc("/products", controllers.Product.ListProducts)

	// Low-stock listing (must be before the generic /:id route)
	mux.HandleFunc("/products/last-few-left", controllers.Product.LastFewLeft)

	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/products/"), "/")

		if strings.HasSuffix(path, "/colors") {
			controllers.Product.GetColors(w, r)
			return
		}
		if path != "" && !strings.Contains(path, "/") {
			controllers.Product.GetProduct(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Selection grid routes
	mux.HandleFunc("/selections/summary", controllers.Selection.Summary)
	mux.HandleFunc("/selections/fill", controllers.Selection.Fill)

	// Order routes
	mux.HandleFunc("/orders", controllers.Order.PlaceOrder)
	mux.HandleFunc("/orders/", controllers.Order.GetOrder)

	// Admin routes
	mux.HandleFunc("/admin/colors", controllers.Product.Palette)

	mux.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/stock") {
			controllers.Product.SetStock(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	mux.HandleFunc("/admin/orders", controllers.Order.ListOrders)

	// Order actions
	mux.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")

		if strings.HasSuffix(path, "/approve") {
			controllers.Order.ApproveOrder(w, r)
			return
		}
		if strings.HasSuffix(path, "/cancel") {
			controllers.Order.CancelOrder(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Printable sheet
	mux.HandleFunc("/catalog/last-few-left", controllers.Catalog.LastFewLeft)

	// Warm the swatch image cache from Drive
	mux.HandleFunc("/admin/swatches/sync", controllers.Swatch.SyncSwatches)

	// Patterned swatch images, linked from colors.Swatch.SwatchImage
	mux.HandleFunc("/swatches/", controllers.Swatch.GetImage)
}
