package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"storefront-core/colors"
	"storefront-core/repository"
)

// ErrSwatchSourceUnavailable is returned when an image is not cached and Drive is not configured
var ErrSwatchSourceUnavailable = errors.New("swatch image source unavailable")

// SwatchImageService serves the patterned swatch images (multi color, tie dye...)
// from the disk cache, falling back to the Drive swatch folder.
type SwatchImageService struct {
	drive    DriveServiceInterface
	folderID string
	cache    *ImageCache
}

// NewSwatchImageService creates a new SwatchImageService. drive may be nil.
func NewSwatchImageService(drive DriveServiceInterface, folderID string, cache *ImageCache) *SwatchImageService {
	return &SwatchImageService{drive: drive, folderID: folderID, cache: cache}
}

// Image returns the optimized JPEG for a swatch slug at "thumb" or "medium" size
func (s *SwatchImageService) Image(ctx context.Context, slug, size string) ([]byte, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if _, ok := colors.NameForSlug(slug); !ok {
		return nil, fmt.Errorf("swatch %q: %w", slug, repository.ErrNotFound)
	}
	size = NormalizeImageSize(size)

	if data, ok, err := s.cache.Read(slug, size); err != nil {
		log.Printf("⚠️  SwatchImage: cache read failed for %s/%s: %v", slug, size, err)
	} else if ok {
		return data, nil
	}

	if s.drive == nil || s.folderID == "" {
		return nil, ErrSwatchSourceUnavailable
	}

	files, err := s.drive.ListSwatchFiles(ctx, s.folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swatch files: %w", err)
	}
	file, ok := matchSwatchFile(files, slug)
	if !ok {
		return nil, fmt.Errorf("swatch image %q: %w", slug, repository.ErrNotFound)
	}

	raw, err := s.drive.DownloadImage(ctx, file.ID)
	if err != nil {
		return nil, err
	}
	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Save(slug, size, optimized); err != nil {
		log.Printf("⚠️  SwatchImage: could not cache %s/%s: %v", slug, size, err)
	}
	return optimized, nil
}

// matchSwatchFile finds the file whose name without extension slugs to slug,
// so "Tie Dye.png" serves "tie-dye".
func matchSwatchFile(files []SwatchFile, slug string) (SwatchFile, bool) {
	for _, f := range files {
		stem := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
		if colors.Slug(stem) == slug {
			return f, true
		}
	}
	return SwatchFile{}, false
}
