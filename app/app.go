package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"storefront-core/app/controller"
	"storefront-core/app/router"
	"storefront-core/config"
	"storefront-core/db"
	"storefront-core/models"
	"storefront-core/repository"
	"storefront-core/service"
)

// Initialize wires repositories, services and controllers and returns the routed mux.
// Without a reachable database the app runs on the in-memory store.
func Initialize(cfg *config.Config) (*http.ServeMux, error) {
	ctx := context.Background()

	products, orders, err := initRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Drive is only needed for patterned swatch images that are not cached yet
	var drive service.DriveServiceInterface
	if cfg.GoogleCredentials != "" {
		driveService, err := service.NewDriveService(ctx, cfg.GoogleCredentials)
		if err != nil {
			log.Printf("⚠️  Drive service unavailable, swatch images will be served from cache only: %v", err)
		} else {
			drive = driveService
		}
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, swatch images will be served from cache only")
	}

	imageCache := service.NewImageCache(cfg.ImageCacheDir)
	if err := imageCache.EnsureDir(); err != nil {
		return nil, err
	}

	productService := service.NewProductService(products)
	selectionService := service.NewSelectionService(products)
	orderService := service.NewOrderService(products, orders)
	catalogService := service.NewCatalogService(productService, service.NewChromePDFRenderer(cfg.ChromePath), cfg.BaseURL)
	swatchService := service.NewSwatchImageService(drive, cfg.SwatchFolderID, imageCache)
	syncService := service.NewSyncService(drive, cfg.SwatchFolderID, imageCache)

	controllers := &router.Controllers{
		Product:   controller.NewProductController(productService),
		Selection: controller.NewSelectionController(selectionService),
		Order:     controller.NewOrderController(orderService),
		Catalog:   controller.NewCatalogController(catalogService),
		Swatch:    controller.NewSwatchController(swatchService, syncService),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)
	return mux, nil
}

func initRepositories(ctx context.Context, cfg *config.Config) (repository.ProductRepositoryInterface, repository.OrderRepositoryInterface, error) {
	if !cfg.Database.HasDatabase() {
		log.Printf("⚠️  No database configured, running in memory mode")
		return memoryRepositories(ctx)
	}

	if err := db.InitDB(cfg.Database); err != nil {
		if cfg.IsProduction() {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("⚠️  %v, running in memory mode", err)
		return memoryRepositories(ctx)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.CloseDB()
		db.DB = nil
		return nil, nil, err
	}
	return repository.NewProductRepository(), repository.NewOrderRepository(), nil
}

func memoryRepositories(ctx context.Context) (repository.ProductRepositoryInterface, repository.OrderRepositoryInterface, error) {
	store := repository.NewMemoryStore()
	if err := seedMemoryStore(ctx, store.Products()); err != nil {
		return nil, nil, err
	}
	return store.Products(), store.Orders(), nil
}

// seedMemoryStore adds a small demo catalog covering every stock tier and color encoding
func seedMemoryStore(ctx context.Context, repo repository.ProductRepositoryInterface) error {
	count := func(n int) *int { return &n }
	demo := []models.Product{
		{Name: "Classic Hoodie", Price: 89000, StockCount: count(40), AvailableColors: json.RawMessage(`["Black", "Gray", "Navy"]`), AvailableSizes: []string{"S", "M", "L", "XL"}},
		{Name: "Rain Jacket", Price: 125000, StockCount: count(4), AvailableColors: json.RawMessage(`[{"name":"Red","hex":"#dc2626"},{"name":"Yellow","hex":"#eab308"}]`), AvailableSizes: []string{"2.2", "2.4", "2.6"}},
		{Name: "Tie Dye Tee", Price: 45000, StockCount: count(8), AvailableColors: json.RawMessage(`["Tie Dye", "Multi Color", "#40e0d0"]`), AvailableSizes: []string{"XS", "S", "M"}},
		{Name: "Knit Sweater", Price: 99000, StockCount: count(2), AvailableColors: json.RawMessage(`["{\"name\":\"Cream\",\"hex\":\"#fffdd0\"}", "Leopard"]`), AvailableSizes: []string{"M", "L"}},
		{Name: "Wool Scarf", Price: 39000, StockCount: count(0), AvailableColors: json.RawMessage(`["Maroon"]`), AvailableSizes: []string{"U"}},
	}
	for i := range demo {
		demo[i].IsActive = true
		if _, err := repo.Create(ctx, &demo[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", demo[i].Name, err)
		}
	}
	log.Printf("📦 Seeded %d demo products", len(demo))
	return nil
}
