package storage

import (
	"context"
	"io"
	"strings"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// FileStorage persists uploaded photo bytes under generated filenames. Delete
// must treat an already-absent file as success so a photo row can always be
// removed even when its backing file is gone.
type FileStorage interface {
	Save(ctx context.Context, filename string, reader io.Reader) (int64, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	Delete(ctx context.Context, filename string) error
	URL(filename string) string
}

// ThumbnailGenerator derives a downscaled copy of an already-stored photo and
// returns the thumbnail's filename.
type ThumbnailGenerator interface {
	Generate(ctx context.Context, filename, mimeType string) (string, error)
}

// ThumbnailName is the canonical thumbnail filename for a stored original.
// Thumbnails are always re-encoded as jpeg.
func ThumbnailName(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return "thumb_" + base + ".jpg"
}
