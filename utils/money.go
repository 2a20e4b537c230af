package utils

import (
	"strconv"
	"strings"
)

// FormatPrice formats a whole-unit amount as "$12.500", with dots as thousands
// separators the way the storefront prints prices.
func FormatPrice(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 2)
	if neg {
		b.WriteString("-")
	}
	b.WriteString("$")

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
