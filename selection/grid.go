// Package selection aggregates a color x size quantity grid into the order summary
// shown next to it and the lines handed to order creation.
//
// A Grid is a sparse mapping; a cell holding zero is the same as a missing cell, and
// every derived view is recomputed from the grid on each call.
package selection

import (
	"sort"
	"strings"
)

// Key identifies one cell of the grid.
type Key struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Grid maps cells to quantities.
type Grid map[Key]int

// Entry is one non-zero cell.
type Entry struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Totals are derived from every non-zero cell. A product has a single unit price;
// color or size never changes it.
type Totals struct {
	TotalQuantity int   `json:"totalQuantity"`
	TotalAmount   int64 `json:"totalAmount"`
}

// Subtotal is the quantity selected for one color across all sizes.
type Subtotal struct {
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Summary is what the order summary panel shows.
type Summary struct {
	Selections []Entry    `json:"selections"`
	Subtotals  []Subtotal `json:"subtotals"`
	Totals
}

// Line is one order line for the order writer.
type Line struct {
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// SetQuantity returns a copy of grid with the cell set to value. A value of zero
// removes the cell. Callers (the stepper) never pass negatives; a negative value
// is stored as absence too.
func SetQuantity(grid Grid, color, size string, value int) Grid {
	next := make(Grid, len(grid)+1)
	for k, v := range grid {
		next[k] = v
	}
	key := Key{Color: color, Size: size}
	if value <= 0 {
		delete(next, key)
		return next
	}
	next[key] = value
	return next
}

// Clear returns an empty grid.
func Clear(Grid) Grid {
	return Grid{}
}

// Fill sets every color x size cell to q, replacing the whole grid: cells outside
// the given universes are dropped, not kept. q <= 0 is Clear.
func Fill(colors, sizes []string, q int) Grid {
	if q <= 0 {
		return Grid{}
	}
	grid := make(Grid, len(colors)*len(sizes))
	for _, c := range colors {
		for _, s := range sizes {
			grid[Key{Color: c, Size: s}] = q
		}
	}
	return grid
}

// FillColumn is Fill restricted to a single size column. It also replaces the grid.
func FillColumn(colors []string, size string, q int) Grid {
	return Fill(colors, []string{size}, q)
}

// DeriveSelections lists the non-zero cells ordered like the grid: by the color's
// position in colorOrder, then the size's position in sizeOrder. Colors or sizes
// missing from their order sort last, alphabetically among themselves.
func DeriveSelections(grid Grid, colorOrder, sizeOrder []string) []Entry {
	colorRank := rankOf(colorOrder)
	sizeRank := rankOf(sizeOrder)

	entries := make([]Entry, 0, len(grid))
	for k, q := range grid {
		if q <= 0 {
			continue
		}
		entries = append(entries, Entry{Color: k.Color, Size: k.Size, Quantity: q})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		ca, cb := lookup(colorRank, a.Color), lookup(colorRank, b.Color)
		if ca != cb {
			return ca < cb
		}
		if a.Color != b.Color {
			return a.Color < b.Color
		}
		sa, sb := lookup(sizeRank, a.Size), lookup(sizeRank, b.Size)
		if sa != sb {
			return sa < sb
		}
		return a.Size < b.Size
	})
	return entries
}

// DeriveTotals sums the grid; TotalAmount is TotalQuantity x unitPrice.
func DeriveTotals(grid Grid, unitPrice int64) Totals {
	var qty int
	for _, q := range grid {
		if q > 0 {
			qty += q
		}
	}
	return Totals{TotalQuantity: qty, TotalAmount: int64(qty) * unitPrice}
}

// ColorSubtotals returns the quantity per color, in colorOrder order with unknown
// colors last. Colors with nothing selected are omitted.
func ColorSubtotals(grid Grid, colorOrder []string) []Subtotal {
	sums := make(map[string]int)
	for k, q := range grid {
		if q > 0 {
			sums[k.Color] += q
		}
	}

	rank := rankOf(colorOrder)
	out := make([]Subtotal, 0, len(sums))
	for c, q := range sums {
		out = append(out, Subtotal{Color: c, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := lookup(rank, out[i].Color), lookup(rank, out[j].Color)
		if ri != rj {
			return ri < rj
		}
		return out[i].Color < out[j].Color
	})
	return out
}

// Summarize derives everything the summary panel needs in one pass.
func Summarize(grid Grid, colorOrder, sizeOrder []string, unitPrice int64) Summary {
	return Summary{
		Selections: DeriveSelections(grid, colorOrder, sizeOrder),
		Subtotals:  ColorSubtotals(grid, colorOrder),
		Totals:     DeriveTotals(grid, unitPrice),
	}
}

// Lines converts the grid into order lines, in summary order.
func Lines(grid Grid, colorOrder, sizeOrder []string, unitPrice int64) []Line {
	entries := DeriveSelections(grid, colorOrder, sizeOrder)
	lines := make([]Line, len(entries))
	for i, e := range entries {
		lines[i] = Line{Color: e.Color, Size: e.Size, Quantity: e.Quantity, UnitPrice: unitPrice}
	}
	return lines
}

// FromEntries builds a grid from a list of cells, as sent by a client. Later
// entries for the same cell replace earlier ones.
func FromEntries(entries []Entry) Grid {
	grid := make(Grid, len(entries))
	for _, e := range entries {
		grid = setInPlace(grid, e.Color, e.Size, e.Quantity)
	}
	return grid
}

func setInPlace(grid Grid, color, size string, value int) Grid {
	key := Key{Color: color, Size: size}
	if value <= 0 {
		delete(grid, key)
	} else {
		grid[key] = value
	}
	return grid
}

func rankOf(order []string) map[string]int {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		k := normalize(v)
		if _, seen := rank[k]; !seen {
			rank[k] = i
		}
	}
	return rank
}

// lookup returns the position of v, or a rank after every known one.
func lookup(rank map[string]int, v string) int {
	if i, ok := rank[normalize(v)]; ok {
		return i
	}
	return len(rank) + 1<<20
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
