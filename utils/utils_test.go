package utils

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := map[int64]string{
		0:       "$0",
		500:     "$500",
		12500:   "$12.500",
		125000:  "$125.000",
		1250000: "$1.250.000",
		-45000:  "-$45.000",
		-999:    "-$999",
	}
	for in, want := range tests {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchSize(t *testing.T) {
	sizes := []string{"2.2", "2.4", "XL"}

	if got, ok := MatchSize(sizes, "2,4"); !ok || got != "2.4" {
		t.Fatalf("got %q %v want 2.4", got, ok)
	}
	if got, ok := MatchSize(sizes, " xl "); !ok || got != "XL" {
		t.Fatalf("got %q %v want XL", got, ok)
	}
	if _, ok := MatchSize(sizes, "3.0"); ok {
		t.Fatal("unknown size should not match")
	}
	if _, ok := MatchSize(sizes, ""); ok {
		t.Fatal("empty size should not match")
	}
}
