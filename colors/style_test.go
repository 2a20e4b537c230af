package colors

import "testing"

func TestStyleForFlatFill(t *testing.T) {
	st := StyleFor(Swatch{Name: "Red", Hex: "#dc2626"})
	if st.BackgroundColor != "#dc2626" || st.BackgroundImage != "" {
		t.Fatalf("unexpected style %+v", st)
	}
	if st.CSS() != "background-color:#dc2626" {
		t.Fatalf("unexpected css %q", st.CSS())
	}
}

func TestStyleForImage(t *testing.T) {
	st := StyleFor(Swatch{Name: "Multi Color", Hex: "#a3a3a3", SwatchImage: "/swatches/multi-color/image"})
	if st.BackgroundColor != "" {
		t.Fatalf("image swatches should not carry a flat fill, got %q", st.BackgroundColor)
	}
	want := "background-image:url('/swatches/multi-color/image');background-size:cover;background-position:center;background-repeat:no-repeat"
	if st.CSS() != want {
		t.Fatalf("got %q want %q", st.CSS(), want)
	}
}

func TestIsValidHex(t *testing.T) {
	tests := map[string]bool{
		"#fff":     true,
		"#FFFFFF":  true,
		"#dc2626":  true,
		"dc2626":   false,
		"#dc262":   false,
		"#dc26261": false,
		"#ggg":     false,
		"":         false,
	}
	for in, want := range tests {
		if got := IsValidHex(in); got != want {
			t.Fatalf("IsValidHex(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		hex     string
		percent float64
		want    string
	}{
		{"#000000", 20, "#333333"},
		{"#ffffff", 20, "#ffffff"},
		{"#dc2626", -100, "#000000"},
		{"#fff", -40, "#999999"},
		{"#102030", 0, "#102030"},
		{"not-a-color", 20, "not-a-color"},
	}
	for _, tt := range tests {
		if got := Lighten(tt.hex, tt.percent); got != tt.want {
			t.Fatalf("Lighten(%s, %v) = %s, want %s", tt.hex, tt.percent, got, tt.want)
		}
	}
}
