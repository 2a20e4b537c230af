package stock

import "sort"

// Tier is the urgency classification derived from a stock count.
// It is computed on demand and never persisted.
type Tier string

const (
	OutOfStock       Tier = "out_of_stock"
	LastFewLeft      Tier = "last_few_left"
	BuyBeforeSoldOut Tier = "buy_before_sold_out"
	LimitedStock     Tier = "limited_stock"
	AbundantStock    Tier = "abundant_stock"
)

// Upper bounds (inclusive) of each urgent tier
const (
	lastFewLeftMax      = 5
	buyBeforeSoldOutMax = 15
	limitedStockMax     = 30
)

// Status is the display annotation for a stock count.
// Disabled must gate the "add to cart" action of whoever renders it.
type Status struct {
	Tier        Tier   `json:"tier"`
	Message     string `json:"message"`
	ShowUrgency bool   `json:"showUrgency"`
	Disabled    bool   `json:"disabled"`
}

// Classify maps a stock count to its tier. Negative counts are out of stock.
func Classify(count int) Status {
	switch {
	case count <= 0:
		return Status{Tier: OutOfStock, Message: "Out of stock", ShowUrgency: true, Disabled: true}
	case count <= lastFewLeftMax:
		return Status{Tier: LastFewLeft, Message: "Last few left — shop now", ShowUrgency: true}
	case count <= buyBeforeSoldOutMax:
		return Status{Tier: BuyBeforeSoldOut, Message: "Buy now, before it sells out", ShowUrgency: true}
	case count <= limitedStockMax:
		return Status{Tier: LimitedStock, Message: "Limited stock available", ShowUrgency: true}
	default:
		return Status{Tier: AbundantStock}
	}
}

// ClassifyNullable is Classify for a count that may be missing (NULL in the store).
func ClassifyNullable(count *int) Status {
	return Classify(Count(count))
}

// IsOutOfStock reports whether nothing can be sold.
func IsOutOfStock(count int) bool {
	return count <= 0
}

// IsOutOfStockNullable treats a missing count as zero.
func IsOutOfStockNullable(count *int) bool {
	return IsOutOfStock(Count(count))
}

// Count dereferences a nullable stock count, nil meaning 0.
func Count(count *int) int {
	if count == nil {
		return 0
	}
	return *count
}

// Stocked is anything carrying a stock level.
type Stocked interface {
	StockLevel() int
}

// FilterLastFewLeft keeps the items in the LastFewLeft tier, lowest stock first.
// Items with the same stock keep their input order. The result is never nil.
func FilterLastFewLeft[T Stocked](items []T) []T {
	out := make([]T, 0)
	for _, item := range items {
		if Classify(item.StockLevel()).Tier == LastFewLeft {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StockLevel() < out[j].StockLevel()
	})
	return out
}
