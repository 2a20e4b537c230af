// Package colors normalizes the color values stored on products.
//
// The store has held colors as plain names, hex strings, JSON-encoded objects and
// decoded objects over time. Every form resolves to a Swatch and parsing never fails:
// unknown input degrades to the "Custom" gray swatch.
package colors

import (
	"encoding/json"
	"sort"
	"strings"
)

// Swatch is a normalized color.
type Swatch struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	SwatchImage string `json:"swatchImage,omitempty"`
	Active      bool   `json:"active"`
}

// Raw is a color object as found in the store.
type Raw struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	SwatchImage string `json:"swatchImage,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// IsNoise reports whether a swatch is unrecognized in every sense.
func (s Swatch) IsNoise() bool {
	return s.Name == CustomName && strings.EqualFold(s.Hex, FallbackHex)
}

// Parse normalizes any stored color representation. A Swatch input carries no
// explicit active flag and is treated as active; pass a Raw to mark a color inactive.
func Parse(input any) Swatch {
	switch v := input.(type) {
	case string:
		return ParseString(v)
	case Raw:
		return ParseObject(v)
	case *Raw:
		if v == nil {
			return noise()
		}
		return ParseObject(*v)
	case Swatch:
		return ParseObject(Raw{Name: v.Name, Hex: v.Hex, SwatchImage: v.SwatchImage})
	case map[string]any:
		return ParseObject(rawFromMap(v))
	case json.RawMessage:
		return parseJSONValue(v)
	case []byte:
		return parseJSONValue(v)
	default:
		return noise()
	}
}

// ParseObject applies the object rules: a name plus hex, or a bare hex.
func ParseObject(r Raw) Swatch {
	name := strings.TrimSpace(r.Name)
	hex := strings.TrimSpace(r.Hex)

	var s Swatch
	switch {
	case name != "" && hex != "":
		s = Swatch{Name: name, Hex: withHash(hex)}
		// A recognized name wins over whatever hex was stored next to it.
		if canonical, ok := CanonicalHex(name); ok {
			s.Hex = canonical
		}
	case hex != "":
		s = Swatch{Name: CustomName, Hex: withHash(hex)}
	case name != "":
		s = fromName(name)
	default:
		s = noise()
	}

	if r.SwatchImage != "" {
		s.SwatchImage = r.SwatchImage
	} else {
		s.SwatchImage = SwatchImageFor(s.Name)
	}
	s.Active = r.Active == nil || *r.Active
	return s
}

// ParseString handles JSON-object strings, hex literals and plain names, in that order.
func ParseString(input string) Swatch {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return noise()
	}

	if strings.HasPrefix(trimmed, "{") {
		var m map[string]any
		if err := json.Unmarshal([]byte(trimmed), &m); err == nil {
			r := rawFromMap(m)
			if strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Hex) != "" {
				return ParseObject(r)
			}
		}
	}

	if strings.HasPrefix(trimmed, "#") {
		return Swatch{Name: CustomName, Hex: trimmed, Active: true}
	}
	return fromName(trimmed)
}

// ParseList normalizes a list of stored colors. It accepts slices or a JSON array
// (as a string or raw bytes); any other shape yields an empty list. Noise entries
// (the "Custom" gray fallback) are dropped; duplicates are kept.
func ParseList(input any) []Swatch {
	var elems []any
	switch v := input.(type) {
	case []Swatch:
		for _, s := range v {
			elems = append(elems, s)
		}
	case []Raw:
		for _, r := range v {
			elems = append(elems, r)
		}
	case []string:
		for _, s := range v {
			elems = append(elems, s)
		}
	case []map[string]any:
		for _, m := range v {
			elems = append(elems, m)
		}
	case []any:
		elems = v
	case []json.RawMessage:
		for _, m := range v {
			elems = append(elems, m)
		}
	case string:
		elems = decodeArray([]byte(strings.TrimSpace(v)))
	case json.RawMessage:
		elems = decodeArray(v)
	case []byte:
		elems = decodeArray(v)
	}

	out := make([]Swatch, 0, len(elems))
	for _, e := range elems {
		s := Parse(e)
		if s.IsNoise() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Merge combines color lists keyed by lowercased name; a later entry replaces an
// earlier one with the same key. Keys found in palette keep the palette's order,
// every other color follows alphabetically.
func Merge(palette []Swatch, lists ...[]Swatch) []Swatch {
	merged := make(map[string]Swatch)
	for _, s := range palette {
		merged[Key(s.Name)] = s
	}
	for _, list := range lists {
		for _, s := range list {
			merged[Key(s.Name)] = s
		}
	}
	return arrange(merged, palette)
}

// Arrange removes duplicates from a single list (last one wins) and orders it
// like the default palette, without adding palette entries.
func Arrange(list []Swatch) []Swatch {
	merged := make(map[string]Swatch, len(list))
	for _, s := range list {
		merged[Key(s.Name)] = s
	}
	return arrange(merged, defaultPalette)
}

func arrange(merged map[string]Swatch, order []Swatch) []Swatch {
	out := make([]Swatch, 0, len(merged))
	placed := make(map[string]bool, len(merged))
	for _, s := range order {
		k := Key(s.Name)
		if placed[k] {
			continue
		}
		if m, ok := merged[k]; ok {
			out = append(out, m)
			placed[k] = true
		}
	}

	var rest []Swatch
	for k, s := range merged {
		if !placed[k] {
			rest = append(rest, s)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		ki, kj := Key(rest[i].Name), Key(rest[j].Name)
		if ki != kj {
			return ki < kj
		}
		return rest[i].Name < rest[j].Name
	})
	return append(out, rest...)
}

// Names returns the display names of a list, in order.
func Names(list []Swatch) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}

func fromName(name string) Swatch {
	hex, ok := CanonicalHex(name)
	if !ok {
		hex = FallbackHex
	}
	return Swatch{Name: name, Hex: hex, SwatchImage: SwatchImageFor(name), Active: true}
}

func noise() Swatch {
	return Swatch{Name: CustomName, Hex: FallbackHex, Active: true}
}

func withHash(hex string) string {
	if strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}

func rawFromMap(m map[string]any) Raw {
	var r Raw
	r.Name, _ = m["name"].(string)
	r.Hex, _ = m["hex"].(string)
	if img, ok := m["swatchImage"].(string); ok {
		r.SwatchImage = img
	} else if img, ok := m["swatch_image"].(string); ok {
		r.SwatchImage = img
	}
	if active, ok := m["active"].(bool); ok {
		r.Active = &active
	}
	return r
}

func parseJSONValue(data []byte) Swatch {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return ParseString(string(data))
	}
	return Parse(v)
}

func decodeArray(data []byte) []any {
	var elems []any
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	return elems
}
