package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Style describes how a swatch is filled.
type Style struct {
	BackgroundColor    string `json:"backgroundColor,omitempty"`
	BackgroundImage    string `json:"backgroundImage,omitempty"`
	BackgroundSize     string `json:"backgroundSize,omitempty"`
	BackgroundPosition string `json:"backgroundPosition,omitempty"`
	BackgroundRepeat   string `json:"backgroundRepeat,omitempty"`
}

// StyleFor prefers the swatch image and falls back to a flat hex fill.
func StyleFor(s Swatch) Style {
	if s.SwatchImage != "" {
		return Style{
			BackgroundImage:    fmt.Sprintf("url('%s')", s.SwatchImage),
			BackgroundSize:     "cover",
			BackgroundPosition: "center",
			BackgroundRepeat:   "no-repeat",
		}
	}
	return Style{BackgroundColor: s.Hex}
}

// CSS renders the style as an inline declaration list.
func (st Style) CSS() string {
	var decls []string
	add := func(prop, value string) {
		if value != "" {
			decls = append(decls, prop+":"+value)
		}
	}
	add("background-color", st.BackgroundColor)
	add("background-image", st.BackgroundImage)
	add("background-size", st.BackgroundSize)
	add("background-position", st.BackgroundPosition)
	add("background-repeat", st.BackgroundRepeat)
	return strings.Join(decls, ";")
}

// IsValidHex reports whether s is "#" followed by exactly 3 or 6 hex digits.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Lighten raises every RGB channel by round(2.55*percent), clamped to [0,255].
// Negative percentages darken. Invalid input is returned unchanged.
func Lighten(hex string, percent float64) string {
	r, g, b, ok := channels(hex)
	if !ok {
		return hex
	}
	amount := int(math.Round(2.55 * percent))
	return fmt.Sprintf("#%02x%02x%02x", clamp(r+amount), clamp(g+amount), clamp(b+amount))
}

func channels(hex string) (int, int, int, bool) {
	if !IsValidHex(hex) {
		return 0, 0, 0, false
	}
	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
