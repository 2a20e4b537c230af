package colors

import (
	"encoding/json"
	"testing"
)

func TestParseObjectKeepsMatchingCanonicalHex(t *testing.T) {
	got := Parse(Raw{Name: "Red", Hex: "#dc2626"})
	if got.Name != "Red" || got.Hex != "#dc2626" {
		t.Fatalf("got %+v, want Red #dc2626", got)
	}
	if !got.Active {
		t.Fatal("active should default to true")
	}
}

func TestParseObjectCanonicalOverride(t *testing.T) {
	got := Parse(Raw{Name: "Red", Hex: "#000000"})
	if got.Hex != "#dc2626" {
		t.Fatalf("got hex %s, want #dc2626", got.Hex)
	}

	got = Parse(Raw{Name: "rED", Hex: "000000"})
	if got.Name != "rED" || got.Hex != "#dc2626" {
		t.Fatalf("case-insensitive override failed: %+v", got)
	}
}

func TestParseObjectUnknownNameKeepsHex(t *testing.T) {
	got := Parse(Raw{Name: "Sunset", Hex: "ff8800"})
	if got.Name != "Sunset" || got.Hex != "#ff8800" {
		t.Fatalf("got %+v, want Sunset #ff8800", got)
	}
}

func TestParseObjectHexOnly(t *testing.T) {
	got := Parse(Raw{Hex: "abcdef"})
	if got.Name != CustomName || got.Hex != "#abcdef" {
		t.Fatalf("got %+v, want Custom #abcdef", got)
	}
}

func TestParseObjectSwatchImageAndActive(t *testing.T) {
	inactive := false
	got := Parse(Raw{Name: "Multi Color", Hex: "#123456", Active: &inactive})
	if got.SwatchImage != "/swatches/multi-color/image" {
		t.Fatalf("expected table swatch image, got %q", got.SwatchImage)
	}
	if got.Active {
		t.Fatal("explicit active=false must pass through")
	}

	got = Parse(Raw{Name: "Multi Color", Hex: "#123456", SwatchImage: "https://cdn.example/mc.png"})
	if got.SwatchImage != "https://cdn.example/mc.png" {
		t.Fatalf("object swatch image should win, got %q", got.SwatchImage)
	}
}

func TestParseMapFromDecodedJSON(t *testing.T) {
	got := Parse(map[string]any{"name": "Blue", "hex": "#111111", "active": false})
	if got.Hex != "#2563eb" || got.Active {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONString(t *testing.T) {
	got := Parse(`{"name":"Navy","hex":"#000080"}`)
	if got.Name != "Navy" || got.Hex != "#1e3a8a" {
		t.Fatalf("got %+v, want Navy #1e3a8a", got)
	}

	// Broken JSON falls through to name handling without failing.
	got = Parse(`{"name":"Navy"`)
	if got.Hex != FallbackHex || got.Name != `{"name":"Navy"` {
		t.Fatalf("broken JSON should degrade to gray name, got %+v", got)
	}
}

func TestParseHexString(t *testing.T) {
	got := Parse("#FF0000")
	if got.Name != CustomName || got.Hex != "#FF0000" {
		t.Fatalf("got %+v, want Custom #FF0000", got)
	}
}

func TestParseNameString(t *testing.T) {
	got := Parse("blue")
	if got.Name != "blue" || got.Hex != "#2563eb" {
		t.Fatalf("got %+v, want blue #2563eb", got)
	}

	got = Parse("chartreuse-ish")
	if got.Name != "chartreuse-ish" || got.Hex != FallbackHex {
		t.Fatalf("unknown name should fall back to gray, got %+v", got)
	}

	got = Parse("multi color")
	if got.SwatchImage == "" {
		t.Fatal("plain names still resolve swatch images")
	}
}

func TestParseUnsupportedInput(t *testing.T) {
	for _, in := range []any{nil, 42, 3.5, true, []string{"red"}} {
		if got := Parse(in); !got.IsNoise() {
			t.Fatalf("Parse(%v) = %+v, want noise", in, got)
		}
	}
}

func TestParseListShapes(t *testing.T) {
	raw := `["Red", "#00ff00", {"name":"Blue","hex":"#000000"}, "{\"name\":\"Pink\",\"hex\":\"#ffc0cb\"}"]`

	for name, input := range map[string]any{
		"string":     raw,
		"bytes":      []byte(raw),
		"rawMessage": json.RawMessage(raw),
	} {
		got := ParseList(input)
		if len(got) != 4 {
			t.Fatalf("%s: expected 4 swatches, got %d (%+v)", name, len(got), got)
		}
		if got[0].Hex != "#dc2626" || got[1].Name != CustomName || got[2].Hex != "#2563eb" || got[3].Hex != "#db2777" {
			t.Fatalf("%s: unexpected swatches %+v", name, got)
		}
	}
}

func TestParseListRejectsOtherShapes(t *testing.T) {
	for _, in := range []any{nil, 12, "not json", `{"name":"Red","hex":"#dc2626"}`, map[string]any{"name": "Red"}} {
		got := ParseList(in)
		if got == nil || len(got) != 0 {
			t.Fatalf("ParseList(%v) = %+v, want empty list", in, got)
		}
	}
}

func TestParseListDropsNoiseOnly(t *testing.T) {
	got := ParseList([]any{"Red", "red", "", map[string]any{"hex": "#888888"}, "#888888", 7})
	if len(got) != 2 {
		t.Fatalf("expected the two reds to survive, got %+v", got)
	}
	if got[0].Name != "Red" || got[1].Name != "red" {
		t.Fatalf("duplicates must be kept in order, got %+v", got)
	}
}

func TestParseListKeepsUnknownNamedGray(t *testing.T) {
	got := ParseList([]string{"Sunset"})
	if len(got) != 1 || got[0].Hex != FallbackHex {
		t.Fatalf("named gray fallback is not noise, got %+v", got)
	}
}

func TestParseListSwatchesDefaultActive(t *testing.T) {
	inactive := false
	got := ParseList([]any{
		Swatch{Name: "Red", Hex: "#dc2626"},
		Raw{Name: "Tie Dye", Hex: "#ff00ff", Active: &inactive},
	})
	if len(got) != 2 {
		t.Fatalf("got %d swatches want 2", len(got))
	}
	if !got[0].Active {
		t.Fatalf("swatch without an active flag should be active, got %+v", got[0])
	}
	if got[1].Active {
		t.Fatalf("explicitly inactive color should stay inactive, got %+v", got[1])
	}

	typed := ParseList([]Swatch{{Name: "Red", Hex: "#dc2626"}})
	if len(typed) != 1 || !typed[0].Active {
		t.Fatalf("got %+v want one active swatch", typed)
	}
}

func TestMergeOrdersByPaletteThenAlphabet(t *testing.T) {
	palette := []Swatch{{Name: "Red", Hex: "#dc2626"}, {Name: "Blue", Hex: "#2563eb"}}
	configured := []Swatch{
		{Name: "zebra", Hex: "#111111"},
		{Name: "blue", Hex: "#0000ff"},
		{Name: "Apricot", Hex: "#fbceb1"},
	}

	got := Merge(palette, configured)
	want := []string{"Red", "blue", "Apricot", "zebra"}
	if len(got) != len(want) {
		t.Fatalf("got %d swatches, want %d: %+v", len(got), len(want), got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %s want %s", i, got[i].Name, name)
		}
	}
	if got[1].Hex != "#0000ff" {
		t.Fatalf("later write should win, got %s", got[1].Hex)
	}
}

func TestMergeNeverDuplicatesKeys(t *testing.T) {
	got := Merge(DefaultPalette(), ParseList([]string{"red", "RED", "Sunset", "sunset"}))
	seen := make(map[string]bool)
	for _, s := range got {
		k := Key(s.Name)
		if seen[k] {
			t.Fatalf("duplicate key %s", k)
		}
		seen[k] = true
	}
	if len(got) != len(DefaultPalette())+1 {
		t.Fatalf("expected palette plus one new color, got %d", len(got))
	}
}

func TestArrangeDoesNotAddPaletteColors(t *testing.T) {
	got := Arrange(ParseList([]string{"Brown", "Sunset", "Black", "brown"}))
	want := []string{"Black", "brown", "Sunset"}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %s want %s", i, got[i].Name, name)
		}
	}
}

func TestDefaultPaletteIsACopy(t *testing.T) {
	p := DefaultPalette()
	p[0].Hex = "#123456"
	if hex, _ := CanonicalHex(p[0].Name); hex == "#123456" {
		t.Fatal("mutating the returned palette must not change the table")
	}
}

func TestSlugRoundTrip(t *testing.T) {
	if Slug("Multi  Color") != "multi-color" {
		t.Fatalf("unexpected slug %q", Slug("Multi  Color"))
	}
	name, ok := NameForSlug("tie-dye")
	if !ok || name != "tie dye" {
		t.Fatalf("NameForSlug(tie-dye) = %q, %v", name, ok)
	}
	if _, ok := NameForSlug("red"); ok {
		t.Fatal("solid colors have no swatch image slug")
	}
}
