package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"storefront-core/repository"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

type fakeDrive struct {
	files     []SwatchFile
	images    map[string][]byte
	downloads int
}

var _ DriveServiceInterface = (*fakeDrive)(nil)

func (d *fakeDrive) ListSwatchFiles(ctx context.Context, folderID string) ([]SwatchFile, error) {
	return d.files, nil
}

func (d *fakeDrive) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	d.downloads++
	data, ok := d.images[fileID]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func TestOptimizeImageResizesThumb(t *testing.T) {
	out, err := OptimizeImage(testPNG(t, 1000, 500), "thumb")
	if err != nil {
		t.Fatalf("OptimizeImage: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 300 || got.Y != 150 {
		t.Fatalf("got %v want 300x150", got)
	}
}

func TestOptimizeImageNeverUpscales(t *testing.T) {
	out, err := OptimizeImage(testPNG(t, 120, 80), "medium")
	if err != nil {
		t.Fatalf("OptimizeImage: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("jpeg.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 120 || got.Y != 80 {
		t.Fatalf("got %v want 120x80", got)
	}
}

func TestOptimizeImageRejectsGarbage(t *testing.T) {
	if _, err := OptimizeImage([]byte("not an image"), "thumb"); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestImageCacheRoundTrip(t *testing.T) {
	cache := NewImageCache(t.TempDir() + "/swatches")
	if _, ok, err := cache.Read("leopard", "thumb"); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := cache.Save("leopard", "thumb", []byte("jpeg")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, ok, err := cache.Read("leopard", "thumb")
	if err != nil || !ok || string(data) != "jpeg" {
		t.Fatalf("got %q ok=%v err=%v", data, ok, err)
	}
}

func TestSwatchImageFetchesOnceThenCaches(t *testing.T) {
	drive := &fakeDrive{
		files:  []SwatchFile{{ID: "1", Name: "Leopard.png"}, {ID: "2", Name: "Tie Dye.png"}},
		images: map[string][]byte{"2": testPNG(t, 400, 400)},
	}
	svc := NewSwatchImageService(drive, "folder", NewImageCache(t.TempDir()))

	first, err := svc.Image(context.Background(), "tie-dye", "thumb")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	second, err := svc.Image(context.Background(), "Tie-Dye", "thumb")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if drive.downloads != 1 || !bytes.Equal(first, second) {
		t.Fatalf("second request should hit the cache, downloads=%d", drive.downloads)
	}
}

func TestSwatchImageErrors(t *testing.T) {
	ctx := context.Background()

	svc := NewSwatchImageService(nil, "", NewImageCache(t.TempDir()))
	if _, err := svc.Image(ctx, "polka-dots", "thumb"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v want ErrNotFound", err)
	}
	if _, err := svc.Image(ctx, "leopard", "thumb"); !errors.Is(err, ErrSwatchSourceUnavailable) {
		t.Fatalf("got %v want ErrSwatchSourceUnavailable", err)
	}

	missing := NewSwatchImageService(&fakeDrive{}, "folder", NewImageCache(t.TempDir()))
	if _, err := missing.Image(ctx, "multi-color", "medium"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v want ErrNotFound", err)
	}
}

func TestSyncSwatches(t *testing.T) {
	drive := &fakeDrive{
		files: []SwatchFile{
			{ID: "1", Name: "Leopard.png"},
			{ID: "2", Name: "Polka Dots.png"},
			{ID: "3", Name: "Tie Dye.jpg"},
			{ID: "4", Name: "leopard.jpeg"},
		},
		images: map[string][]byte{"1": testPNG(t, 900, 900), "3": []byte("broken")},
	}
	cache := NewImageCache(t.TempDir())
	svc := NewSyncService(drive, "folder", cache)

	result, err := svc.SyncSwatches(context.Background())
	if err != nil {
		t.Fatalf("SyncSwatches: %v", err)
	}
	if result.Total != 4 || result.Downloaded != 1 || result.Skipped != 2 || len(result.Errors) != 1 {
		t.Fatalf("got %+v", result)
	}
	for _, size := range []string{"thumb", "medium"} {
		if _, ok, _ := cache.Read("leopard", size); !ok {
			t.Fatalf("leopard %s was not cached", size)
		}
	}

	again, err := svc.SyncSwatches(context.Background())
	if err != nil {
		t.Fatalf("SyncSwatches: %v", err)
	}
	if again.Downloaded != 0 || drive.downloads != 3 {
		t.Fatalf("cached swatches should not be downloaded again, got %+v downloads=%d", again, drive.downloads)
	}
}

func TestSyncSwatchesWithoutDrive(t *testing.T) {
	svc := NewSyncService(nil, "folder", NewImageCache(t.TempDir()))
	if _, err := svc.SyncSwatches(context.Background()); !errors.Is(err, ErrSwatchSourceUnavailable) {
		t.Fatalf("got %v want ErrSwatchSourceUnavailable", err)
	}
}
