package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-core/config"
	"storefront-core/models"
)

func TestInitializeMemoryMode(t *testing.T) {
	cfg := &config.Config{
		Port:          "8080",
		Env:           "test",
		BaseURL:       "http://localhost:8080",
		ImageCacheDir: t.TempDir(),
	}

	mux, err := Initialize(cfg)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/last-few-left", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rec.Code)
	}

	var resp models.ProductListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Knit Sweater (2) then Rain Jacket (4)
	if len(resp.Items) != 2 || resp.Items[0].Name != "Knit Sweater" {
		t.Fatalf("got %+v", resp.Items)
	}
}
