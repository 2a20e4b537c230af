package colors

import "strings"

// FallbackHex is the neutral gray used for names the palette does not know.
const FallbackHex = "#888888"

// CustomName names colors that only carry a hex value.
const CustomName = "Custom"

// defaultPalette is the master color list, in display order.
var defaultPalette = []Swatch{
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#ffffff"},
	{Name: "Off White", Hex: "#faf9f6"},
	{Name: "Cream", Hex: "#fffdd0"},
	{Name: "Beige", Hex: "#f5f5dc"},
	{Name: "Khaki", Hex: "#c3b091"},
	{Name: "Gray", Hex: "#6b7280"},
	{Name: "Charcoal", Hex: "#36454f"},
	{Name: "Silver", Hex: "#c0c0c0"},
	{Name: "Red", Hex: "#dc2626"},
	{Name: "Maroon", Hex: "#7f1d1d"},
	{Name: "Wine", Hex: "#722f37"},
	{Name: "Pink", Hex: "#db2777"},
	{Name: "Peach", Hex: "#ffcba4"},
	{Name: "Coral", Hex: "#ff7f50"},
	{Name: "Orange", Hex: "#ea580c"},
	{Name: "Rust", Hex: "#b7410e"},
	{Name: "Mustard", Hex: "#ffdb58"},
	{Name: "Yellow", Hex: "#eab308"},
	{Name: "Gold", Hex: "#d4af37"},
	{Name: "Lime", Hex: "#65a30d"},
	{Name: "Olive", Hex: "#808000"},
	{Name: "Green", Hex: "#16a34a"},
	{Name: "Mint", Hex: "#98ff98"},
	{Name: "Teal", Hex: "#0d9488"},
	{Name: "Turquoise", Hex: "#40e0d0"},
	{Name: "Cyan", Hex: "#06b6d4"},
	{Name: "Sky Blue", Hex: "#0ea5e9"},
	{Name: "Blue", Hex: "#2563eb"},
	{Name: "Navy", Hex: "#1e3a8a"},
	{Name: "Indigo", Hex: "#4f46e5"},
	{Name: "Purple", Hex: "#9333ea"},
	{Name: "Lavender", Hex: "#e6e6fa"},
	{Name: "Magenta", Hex: "#c026d3"},
	{Name: "Brown", Hex: "#92400e"},
	{Name: "Multi Color", Hex: "#a3a3a3"},
}

// swatchImages holds non-solid swatches, keyed by lowercased name.
var swatchImages = map[string]string{
	"multi color": "/swatches/multi-color/image",
	"tie dye":     "/swatches/tie-dye/image",
	"leopard":     "/swatches/leopard/image",
}

var paletteIndex = buildPaletteIndex()

func buildPaletteIndex() map[string]int {
	index := make(map[string]int, len(defaultPalette))
	for i, s := range defaultPalette {
		index[Key(s.Name)] = i
	}
	return index
}

// DefaultPalette returns a copy of the master palette, active and with swatch images resolved.
func DefaultPalette() []Swatch {
	out := make([]Swatch, len(defaultPalette))
	for i, s := range defaultPalette {
		s.SwatchImage = SwatchImageFor(s.Name)
		s.Active = true
		out[i] = s
	}
	return out
}

// CanonicalHex returns the palette hex for a color name, case-insensitive.
func CanonicalHex(name string) (string, bool) {
	i, ok := paletteIndex[Key(name)]
	if !ok {
		return "", false
	}
	return defaultPalette[i].Hex, true
}

// SwatchImageFor returns the image URL of a non-solid swatch, or "".
func SwatchImageFor(name string) string {
	return swatchImages[Key(name)]
}

// NameForSlug resolves a swatch image slug ("multi-color") back to its color name.
func NameForSlug(slug string) (string, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for name := range swatchImages {
		if Slug(name) == slug {
			return name, true
		}
	}
	return "", false
}

// Slug turns a color name into a URL path segment.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Key is the identity of a color: its lowercased name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
