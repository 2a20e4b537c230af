package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"storefront-core/repository"
	"storefront-core/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("product 3: %w", repository.ErrNotFound), http.StatusNotFound},
		{repository.ErrProductInactive, http.StatusNotFound},
		{fmt.Errorf("available 2, requested 3: %w", repository.ErrInsufficientStock), http.StatusConflict},
		{repository.ErrInvalidStatus, http.StatusConflict},
		{fmt.Errorf("color %q is not offered: %w", "Green", service.ErrInvalidSelection), http.StatusBadRequest},
		{service.ErrEmptySelection, http.StatusBadRequest},
		{service.ErrSwatchSourceUnavailable, http.StatusServiceUnavailable},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Fatalf("%v: got %d want %d", tt.err, got, tt.want)
		}
	}
}

func TestPathSegments(t *testing.T) {
	tests := []struct {
		path, prefix string
		want         string
	}{
		{"/products/12/colors", "/products/", "12|colors"},
		{"/products/12/", "/products/", "12"},
		{"/products/", "/products/", ""},
		{"/admin/orders/abc/approve", "/admin/orders/", "abc|approve"},
	}
	for _, tt := range tests {
		if got := strings.Join(pathSegments(tt.path, tt.prefix), "|"); got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseProductID(t *testing.T) {
	if id, ok := parseProductID("42"); !ok || id != 42 {
		t.Fatalf("got %d %v want 42 true", id, ok)
	}
	for _, s := range []string{"0", "-3", "abc", ""} {
		if _, ok := parseProductID(s); ok {
			t.Fatalf("%q should be rejected", s)
		}
	}
}
