package controller

import (
	"fmt"
	"log"
	"net/http"

	"storefront-core/service"
)

// SwatchController serves the images of patterned swatches
type SwatchController struct {
	images      *service.SwatchImageService
	syncService service.SyncServiceInterface
}

// NewSwatchController creates a new SwatchController
func NewSwatchController(images *service.SwatchImageService, syncService service.SyncServiceInterface) *SwatchController {
	return &SwatchController{images: images, syncService: syncService}
}

// GetImage handles GET /swatches/{slug}/image?size=thumb|medium
func (c *SwatchController) GetImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments := pathSegments(r.URL.Path, "/swatches/")
	if len(segments) != 2 || segments[1] != "image" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	slug := segments[0]
	size := service.NormalizeImageSize(r.URL.Query().Get("size"))

	data, err := c.images.Image(r.Context(), slug, size)
	if err != nil {
		writeError(w, "GetSwatchImage", err)
		return
	}

	log.Printf("📸 GetSwatchImage: slug=%s size=%s bytes=%d", slug, size, len(data))
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ GetSwatchImage: Error writing image response: %v", err)
	}
}

// SyncSwatches handles POST /admin/swatches/sync
// Example response:
// {
//   "total": 3,
//   "downloaded": 2,
//   "skipped": 1,
//   "errors": []
// }
func (c *SwatchController) SyncSwatches(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SyncSwatches: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ SyncSwatches: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := c.syncService.SyncSwatches(r.Context())
	if err != nil {
		writeError(w, "SyncSwatches", err)
		return
	}

	log.Printf("✅ SyncSwatches: downloaded=%d skipped=%d failed=%d", result.Downloaded, result.Skipped, len(result.Errors))
	writeJSON(w, "SyncSwatches", http.StatusOK, result)
}
