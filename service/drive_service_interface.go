package service

import "context"

// SwatchFile is an image file in the swatch folder
type SwatchFile struct {
	ID       string
	Name     string
	MimeType string
}

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListSwatchFiles(ctx context.Context, folderID string) ([]SwatchFile, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
