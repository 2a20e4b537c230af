package service

import (
	"context"

	"storefront-core/models"
)

// SyncServiceInterface defines the contract for warming the swatch image cache
type SyncServiceInterface interface {
	// SyncSwatches downloads every swatch image of the Drive folder that is not cached yet.
	// downloaded = newly cached, skipped = already cached or not a known swatch, total = files seen in Drive.
	SyncSwatches(ctx context.Context) (*models.SwatchSyncResponse, error)
}
