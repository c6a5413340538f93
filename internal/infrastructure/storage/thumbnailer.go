package storage

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/disintegration/imaging"

	"github.com/shadrack-family/family-site-backend/internal/adapter/storage"
)

const (
	thumbWidth   = 400
	thumbHeight  = 400
	thumbQuality = 80
)

// Thumbnailer reads a stored original back from file storage and writes a
// downscaled jpeg next to it. WebP originals are skipped (no decoder).
type Thumbnailer struct {
	files storage.FileStorage
}

func NewThumbnailer(files storage.FileStorage) *Thumbnailer {
	return &Thumbnailer{files: files}
}

func (t *Thumbnailer) Generate(ctx context.Context, filename, mimeType string) (string, error) {
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return "", fmt.Errorf("unsupported thumbnail source type %q", mimeType)
	}

	src, err := t.files.Open(ctx, filename)
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return "", fmt.Errorf("encoding thumbnail: %w", err)
	}

	name := storage.ThumbnailName(filename)
	if _, err := t.files.Save(ctx, name, &buf); err != nil {
		return "", err
	}

	return name, nil
}
