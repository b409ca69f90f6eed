package storage

import (
	"context"
	"mime/multipart"
)

// StorageService manages portfolio media uploads.
type StorageService interface {
	// UploadPortfolioImage stores an image under the creative's folder
	// and returns its public delivery URL.
	UploadPortfolioImage(ctx context.Context, creativeID string, file multipart.File) (string, error)
	// DeleteImage removes an uploaded image given its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
