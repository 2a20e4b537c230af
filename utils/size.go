package utils

import "strings"

// NormalizeSize trims a size label, uppercases letter sizes and turns a decimal
// comma into a dot, so "2,2" and "2.2" or " s " and "S" compare equal.
func NormalizeSize(size string) string {
	s := strings.ToUpper(strings.TrimSpace(size))
	return strings.ReplaceAll(s, ",", ".")
}

// MatchSize returns the entry of sizes equal to size after normalization.
func MatchSize(sizes []string, size string) (string, bool) {
	want := NormalizeSize(size)
	if want == "" {
		return "", false
	}
	for _, s := range sizes {
		if NormalizeSize(s) == want {
			return s, true
		}
	}
	return "", false
}
