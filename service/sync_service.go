package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"storefront-core/colors"
	"storefront-core/models"
)

var imageSizes = []string{"thumb", "medium"}

// SyncService fills the swatch image cache from the Drive swatch folder
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	folderID     string
	cache        *ImageCache
}

// NewSyncService creates a new SyncService. driveService may be nil.
func NewSyncService(driveService DriveServiceInterface, folderID string, cache *ImageCache) *SyncService {
	return &SyncService{
		driveService: driveService,
		folderID:     folderID,
		cache:        cache,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncSwatches downloads and optimizes, at every size, each swatch image not cached yet.
// Files that do not name a known swatch are skipped. Per-file failures are collected
// in the result, only a failed listing aborts.
func (s *SyncService) SyncSwatches(ctx context.Context) (*models.SwatchSyncResponse, error) {
	if s.driveService == nil || s.folderID == "" {
		return nil, ErrSwatchSourceUnavailable
	}

	log.Printf("🔄 Starting swatch sync for folder: %s", s.folderID)

	files, err := s.driveService.ListSwatchFiles(ctx, s.folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swatch files from Drive: %w", err)
	}

	result := &models.SwatchSyncResponse{Total: len(files), Errors: []string{}}
	seen := make(map[string]bool)

	for _, file := range files {
		slug := colors.Slug(strings.TrimSuffix(file.Name, filepath.Ext(file.Name)))
		if _, ok := colors.NameForSlug(slug); !ok {
			log.Printf("⏭️  Skipping %s (not a known swatch)", file.Name)
			result.Skipped++
			continue
		}
		if seen[slug] {
			log.Printf("⏭️  Skipping %s (duplicate swatch %s)", file.Name, slug)
			result.Skipped++
			continue
		}
		seen[slug] = true

		if s.cached(slug) {
			log.Printf("⏭️  Skipping %s (already cached)", file.Name)
			result.Skipped++
			continue
		}

		raw, err := s.driveService.DownloadImage(ctx, file.ID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to download image %s (%s): %v", file.Name, file.ID, err))
			log.Printf("❌ %s", result.Errors[len(result.Errors)-1])
			continue
		}

		if err := s.store(slug, raw); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to cache image %s: %v", file.Name, err))
			log.Printf("❌ %s", result.Errors[len(result.Errors)-1])
			continue
		}
		result.Downloaded++
	}

	log.Printf("🎉 Swatch sync completed: %d downloaded, %d skipped, %d failed out of %d files",
		result.Downloaded, result.Skipped, len(result.Errors), result.Total)
	return result, nil
}

func (s *SyncService) cached(slug string) bool {
	for _, size := range imageSizes {
		if _, ok, err := s.cache.Read(slug, size); err != nil || !ok {
			return false
		}
	}
	return true
}

func (s *SyncService) store(slug string, raw []byte) error {
	for _, size := range imageSizes {
		optimized, err := OptimizeImage(raw, size)
		if err != nil {
			return err
		}
		if err := s.cache.Save(slug, size, optimized); err != nil {
			return err
		}
	}
	return nil
}
