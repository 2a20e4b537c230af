package selection

import (
	"reflect"
	"testing"
)

var (
	colorOrder = []string{"Red", "Blue"}
	sizeOrder  = []string{"2.2", "2.4"}
)

func TestDeriveSelectionsFollowsGridOrder(t *testing.T) {
	grid := Grid{}
	grid = SetQuantity(grid, "Blue", "2.2", 3)
	grid = SetQuantity(grid, "Red", "2.4", 2)

	got := DeriveSelections(grid, colorOrder, sizeOrder)
	want := []Entry{
		{Color: "Red", Size: "2.4", Quantity: 2},
		{Color: "Blue", Size: "2.2", Quantity: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}

	totals := DeriveTotals(grid, 25000)
	if totals.TotalQuantity != 5 || totals.TotalAmount != 125000 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestSetQuantityZeroRemovesCell(t *testing.T) {
	grid := SetQuantity(Grid{}, "Red", "2.2", 4)
	grid = SetQuantity(grid, "Red", "2.2", 0)
	if len(grid) != 0 {
		t.Fatalf("zero should remove the cell, got %+v", grid)
	}
	if len(DeriveSelections(grid, colorOrder, sizeOrder)) != 0 {
		t.Fatal("removed cells must not be listed")
	}
}

func TestSetQuantityDoesNotMutateInput(t *testing.T) {
	orig := Grid{{Color: "Red", Size: "2.2"}: 1}
	_ = SetQuantity(orig, "Red", "2.2", 9)
	if orig[Key{Color: "Red", Size: "2.2"}] != 1 {
		t.Fatal("SetQuantity changed its input")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	grid := Fill(colorOrder, sizeOrder, 2)
	once := Clear(grid)
	twice := Clear(once)
	if once == nil || len(once) != 0 || len(twice) != 0 {
		t.Fatalf("clear should give an empty grid, got %+v / %+v", once, twice)
	}
	if totals := DeriveTotals(twice, 100); totals != (Totals{}) {
		t.Fatalf("totals of an empty grid should be zero, got %+v", totals)
	}
}

func TestFillReplacesGrid(t *testing.T) {
	grid := Fill(colorOrder, sizeOrder, 3)
	if len(grid) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(grid))
	}
	if totals := DeriveTotals(grid, 10); totals.TotalQuantity != 12 || totals.TotalAmount != 120 {
		t.Fatalf("unexpected totals %+v", totals)
	}

	column := FillColumn(colorOrder, "2.4", 1)
	if len(column) != 2 {
		t.Fatalf("column fill should overwrite, got %+v", column)
	}
	if _, ok := column[Key{Color: "Red", Size: "2.2"}]; ok {
		t.Fatal("column fill kept a cell from another size")
	}

	if got := Fill(colorOrder, sizeOrder, 0); len(got) != 0 {
		t.Fatalf("fill with zero should clear, got %+v", got)
	}
}

func TestTotalsMatchSelections(t *testing.T) {
	grid := FromEntries([]Entry{
		{Color: "Red", Size: "2.2", Quantity: 1},
		{Color: "Green", Size: "XL", Quantity: 7},
		{Color: "Blue", Size: "2.4", Quantity: 2},
		{Color: "Blue", Size: "2.4", Quantity: 5},
		{Color: "Red", Size: "2.4", Quantity: 0},
	})

	sum := 0
	for _, e := range DeriveSelections(grid, colorOrder, sizeOrder) {
		sum += e.Quantity
	}
	if totals := DeriveTotals(grid, 3); totals.TotalQuantity != sum || totals.TotalAmount != int64(sum)*3 {
		t.Fatalf("totals %+v do not match selections sum %d", totals, sum)
	}
	if sum != 13 {
		t.Fatalf("later entries should replace earlier ones, sum %d", sum)
	}
}

func TestUnknownColorsAndSizesSortLast(t *testing.T) {
	grid := FromEntries([]Entry{
		{Color: "Green", Size: "2.2", Quantity: 1},
		{Color: "Amber", Size: "2.2", Quantity: 1},
		{Color: "blue", Size: "XL", Quantity: 1},
		{Color: "blue", Size: "2.2", Quantity: 1},
	})
	got := DeriveSelections(grid, colorOrder, sizeOrder)
	want := []Entry{
		{Color: "blue", Size: "2.2", Quantity: 1},
		{Color: "blue", Size: "XL", Quantity: 1},
		{Color: "Amber", Size: "2.2", Quantity: 1},
		{Color: "Green", Size: "2.2", Quantity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestSummarizeAndLines(t *testing.T) {
	grid := FromEntries([]Entry{
		{Color: "Blue", Size: "2.2", Quantity: 3},
		{Color: "Blue", Size: "2.4", Quantity: 1},
		{Color: "Red", Size: "2.4", Quantity: 2},
	})

	summary := Summarize(grid, colorOrder, sizeOrder, 1000)
	wantSubtotals := []Subtotal{{Color: "Red", Quantity: 2}, {Color: "Blue", Quantity: 4}}
	if !reflect.DeepEqual(summary.Subtotals, wantSubtotals) {
		t.Fatalf("got subtotals %+v want %+v", summary.Subtotals, wantSubtotals)
	}
	if summary.TotalQuantity != 6 || summary.TotalAmount != 6000 {
		t.Fatalf("unexpected totals %+v", summary.Totals)
	}

	lines := Lines(grid, colorOrder, sizeOrder, 1000)
	if len(lines) != 3 || lines[0].Color != "Red" || lines[0].UnitPrice != 1000 {
		t.Fatalf("unexpected lines %+v", lines)
	}
}
