package service

import (
	"context"
	"fmt"
	"log"

	"storefront-core/colors"
	"storefront-core/models"
	"storefront-core/repository"
	"storefront-core/stock"
	"storefront-core/utils"
)

// ProductService builds storefront views of products
type ProductService struct {
	repository repository.ProductRepositoryInterface
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepositoryInterface) *ProductService {
	return &ProductService{repository: repo}
}

// BuildCard normalizes a product's stored colors and classifies its stock
func BuildCard(p models.Product) models.ProductCard {
	sizes := p.AvailableSizes
	if sizes == nil {
		sizes = []string{}
	}
	return models.ProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		PriceFormatted: utils.FormatPrice(p.Price),
		StockCount:     p.StockLevel(),
		Colors:         ProductColors(p),
		Sizes:          sizes,
		Stock:          stock.ClassifyNullable(p.StockCount),
	}
}

// ProductColors returns the product's colors without noise or duplicates, in palette order
func ProductColors(p models.Product) []colors.Swatch {
	return colors.Arrange(colors.ParseList(p.AvailableColors))
}

// List returns cards for every active product
func (s *ProductService) List(ctx context.Context) ([]models.ProductCard, error) {
	products, err := s.repository.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	cards := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, BuildCard(p))
	}
	return cards, nil
}

// Get returns the card of an active product. Inactive products are not found.
func (s *ProductService) Get(ctx context.Context, id int64) (*models.ProductCard, error) {
	p, err := s.activeProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	card := BuildCard(*p)
	return &card, nil
}

// LastFewLeft returns active products with 1 to 5 units left, scarcest first.
// The result is never nil.
func (s *ProductService) LastFewLeft(ctx context.Context) ([]models.ProductCard, error) {
	cards, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	low := stock.FilterLastFewLeft(cards)
	log.Printf("📦 LastFewLeft: %d of %d products are almost sold out", len(low), len(cards))
	return low, nil
}

// Colors returns the normalized colors of a product
func (s *ProductService) Colors(ctx context.Context, id int64) ([]colors.Swatch, error) {
	p, err := s.activeProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProductColors(*p), nil
}

// Palette merges the default palette with the colors configured on every product,
// active or not, so the admin color picker offers everything in use.
func (s *ProductService) Palette(ctx context.Context) ([]colors.Swatch, error) {
	products, err := s.repository.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	lists := make([][]colors.Swatch, 0, len(products))
	for _, p := range products {
		lists = append(lists, colors.ParseList(p.AvailableColors))
	}
	return colors.Merge(colors.DefaultPalette(), lists...), nil
}

// SetStock overwrites a product's stock count. Negative counts are rejected.
func (s *ProductService) SetStock(ctx context.Context, id int64, stockCount *int) (*models.ProductCard, error) {
	if stockCount != nil && *stockCount < 0 {
		return nil, fmt.Errorf("stock count %d: %w", *stockCount, ErrInvalidSelection)
	}
	p, err := s.repository.SetStock(ctx, id, stockCount)
	if err != nil {
		return nil, err
	}
	card := BuildCard(*p)
	log.Printf("📦 SetStock: product id=%d tier=%s", id, card.Stock.Tier)
	return &card, nil
}

func (s *ProductService) activeProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return p, nil
}
