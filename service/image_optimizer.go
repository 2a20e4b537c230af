package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ImageCache stores optimized swatch images on disk
type ImageCache struct {
	dir string
}

// NewImageCache creates a cache rooted at dir
func NewImageCache(dir string) *ImageCache {
	return &ImageCache{dir: dir}
}

// EnsureDir ensures the cache directory exists, creates it if it doesn't
func (c *ImageCache) EnsureDir() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Path returns the cache file path for a swatch slug and size
func (c *ImageCache) Path(slug, size string) string {
	return filepath.Join(c.dir, fmt.Sprintf("swatch_%s_%s.jpg", slug, size))
}

// Read returns the cached image, or ok=false when nothing is cached yet
func (c *ImageCache) Read(slug, size string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.Path(slug, size))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read from cache: %w", err)
	}
	return data, true, nil
}

// Save writes an image to the cache
func (c *ImageCache) Save(slug, size string, imageData []byte) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	path := c.Path(slug, size)
	if err := os.WriteFile(path, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Printf("✓ Image cached: %s", path)
	return nil
}

// NormalizeImageSize maps a requested size to "thumb" or "medium"
func NormalizeImageSize(size string) string {
	if size == "thumb" {
		return "thumb"
	}
	return "medium"
}

// OptimizeImage optimizes an image by converting to JPEG and resizing
// imageData: raw image bytes (PNG, JPEG, etc.)
// size: "thumb" or "medium"
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	maxDim, quality := maxSizeMedium, qualityMedium
	if NormalizeImageSize(size) == "thumb" {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	// Fit keeps the aspect ratio and never upscales
	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		log.Printf("🔄 Resized image: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
