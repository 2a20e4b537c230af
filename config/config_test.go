package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("BASE_URL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("got port %q want 8080", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("got base url %q", cfg.BaseURL)
	}
	if cfg.ImageCacheDir != "cache/swatches" {
		t.Fatalf("got cache dir %q", cfg.ImageCacheDir)
	}
	if cfg.Database.HasDatabase() {
		t.Fatal("no database settings should mean memory mode")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("BASE_URL", "https://shop.example/")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("leading colon should be stripped, got %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Fatal("ENV=production not detected")
	}
	if cfg.BaseURL != "https://shop.example" {
		t.Fatalf("trailing slash should be trimmed, got %q", cfg.BaseURL)
	}
	if !cfg.Database.HasDatabase() {
		t.Fatal("host/user/name should be enough for a database")
	}
	want := "host=db port=5432 user=shop password=secret dbname=storefront sslmode=disable"
	if got := cfg.Database.DSN(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("SWATCH_FOLDER_ID: folder-123\nDATABASE_URL: postgres://localhost/shop\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SWATCH_FOLDER_ID", "")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SwatchFolderID != "folder-123" {
		t.Fatalf("got folder %q", cfg.SwatchFolderID)
	}
	if cfg.Database.DSN() != "postgres://localhost/shop" {
		t.Fatalf("got dsn %q", cfg.Database.DSN())
	}
}

func TestLoadMissingConfigFileIsFine(t *testing.T) {
	if _, err := Load(t.TempDir()); err != nil {
		t.Fatalf("missing config.yaml should not fail: %v", err)
	}
}
