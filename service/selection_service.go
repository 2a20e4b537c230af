package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-core/colors"
	"storefront-core/models"
	"storefront-core/repository"
	"storefront-core/selection"
	"storefront-core/utils"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptySelection   = errors.New("empty selection")
)

// SelectionService computes the order summary for a product's color x size grid
type SelectionService struct {
	products repository.ProductRepositoryInterface
}

// NewSelectionService creates a new SelectionService
func NewSelectionService(products repository.ProductRepositoryInterface) *SelectionService {
	return &SelectionService{products: products}
}

// gridAxes returns the color and size order of a product's selection grid
func gridAxes(p models.Product) ([]string, []string) {
	return colors.Names(ProductColors(p)), p.AvailableSizes
}

// activeProduct loads a product the storefront may show. Inactive products read as missing.
func (s *SelectionService) activeProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return p, nil
}

// Summarize derives the summary for the quantities sent by the client. Cells are
// matched to the product's own color and size labels the way an order would be;
// cells for colors or sizes the product does not list are kept and sort last.
func (s *SelectionService) Summarize(ctx context.Context, productID int64, quantities []selection.Entry) (*models.SelectionSummaryResponse, error) {
	p, err := s.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	colorOrder, sizeOrder := gridAxes(*p)
	labels := newLabelMatcher(*p)
	entries := make([]selection.Entry, len(quantities))
	for i, e := range quantities {
		entries[i] = e
		if color, ok := labels.color(e.Color); ok {
			entries[i].Color = color
		}
		if size, ok := labels.size(e.Size); ok {
			entries[i].Size = size
		}
	}
	grid := selection.FromEntries(entries)
	summary := selection.Summarize(grid, colorOrder, sizeOrder, p.Price)

	return &models.SelectionSummaryResponse{
		ProductID:            p.ID,
		Summary:              summary,
		TotalAmountFormatted: utils.FormatPrice(summary.TotalAmount),
	}, nil
}

// Fill sets every cell of the product's grid to quantity, or only the cells of one
// size column when size is not empty. The previous grid is discarded.
func (s *SelectionService) Fill(ctx context.Context, productID int64, quantity int, size string) (*models.SelectionFillResponse, error) {
	p, err := s.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	colorOrder, sizeOrder := gridAxes(*p)

	var grid selection.Grid
	if strings.TrimSpace(size) == "" {
		grid = selection.Fill(colorOrder, sizeOrder, quantity)
	} else {
		column, ok := utils.MatchSize(sizeOrder, size)
		if !ok {
			return nil, fmt.Errorf("size %q is not offered: %w", size, ErrInvalidSelection)
		}
		grid = selection.FillColumn(colorOrder, column, quantity)
	}

	return &models.SelectionFillResponse{
		ProductID:  p.ID,
		Quantities: selection.DeriveSelections(grid, colorOrder, sizeOrder),
		Totals:     selection.DeriveTotals(grid, p.Price),
	}, nil
}

// labelMatcher resolves client color and size labels to the product's own spelling
type labelMatcher struct {
	colors map[string]string
	sizes  []string
}

func newLabelMatcher(p models.Product) labelMatcher {
	byKey := make(map[string]string)
	for _, sw := range ProductColors(p) {
		byKey[colors.Key(sw.Name)] = sw.Name
	}
	return labelMatcher{colors: byKey, sizes: p.AvailableSizes}
}

func (m labelMatcher) color(name string) (string, bool) {
	color, ok := m.colors[colors.Key(name)]
	return color, ok
}

func (m labelMatcher) size(size string) (string, bool) {
	return utils.MatchSize(m.sizes, size)
}

// canonicalGrid maps client cells onto the product's own color and size labels.
// It fails on any color or size the product does not offer.
func canonicalGrid(p models.Product, quantities []selection.Entry) (selection.Grid, error) {
	labels := newLabelMatcher(p)

	entries := make([]selection.Entry, 0, len(quantities))
	for _, e := range quantities {
		if e.Quantity < 0 {
			return nil, fmt.Errorf("negative quantity for %s/%s: %w", e.Color, e.Size, ErrInvalidSelection)
		}
		if e.Quantity == 0 {
			continue
		}
		color, ok := labels.color(e.Color)
		if !ok {
			return nil, fmt.Errorf("color %q is not offered: %w", e.Color, ErrInvalidSelection)
		}
		size, ok := labels.size(e.Size)
		if !ok {
			return nil, fmt.Errorf("size %q is not offered: %w", e.Size, ErrInvalidSelection)
		}
		entries = append(entries, selection.Entry{Color: color, Size: size, Quantity: e.Quantity})
	}
	return selection.FromEntries(entries), nil
}
