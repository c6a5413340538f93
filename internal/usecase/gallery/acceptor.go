package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/adapter/storage"
	"github.com/shadrack-family/family-site-backend/internal/domain"
)

const (
	DefaultMaxFiles    = 20
	DefaultMaxFileSize = 10 << 20 // 10 MiB
)

var defaultAllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

type FilePart struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// Descriptor describes one accepted, already-written file.
type Descriptor struct {
	Filename     string
	OriginalName string
	Size         int64
	MimeType     string
}

type Rejection struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type AcceptorConfig struct {
	MaxFiles     int
	MaxFileSize  int64
	AllowedTypes []string
	WriteTimeout time.Duration
}

// Acceptor validates incoming file parts and writes the accepted ones to file
// storage under fresh uuid-based names, so concurrent batches never collide.
type Acceptor struct {
	files        storage.FileStorage
	maxFiles     int
	maxFileSize  int64
	allowedTypes map[string]struct{}
	writeTimeout time.Duration
}

func NewAcceptor(files storage.FileStorage, cfg AcceptorConfig) *Acceptor {
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = DefaultMaxFiles
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if len(cfg.AllowedTypes) == 0 {
		cfg.AllowedTypes = defaultAllowedTypes
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[t] = struct{}{}
	}

	return &Acceptor{
		files:        files,
		maxFiles:     cfg.MaxFiles,
		maxFileSize:  cfg.MaxFileSize,
		allowedTypes: allowed,
		writeTimeout: cfg.WriteTimeout,
	}
}

// Accept validates each part and writes accepted ones to storage. Invalid
// parts are reported as rejections, never written. A storage failure other
// than a per-file timeout aborts the batch: files written so far are removed
// and the error is returned.
func (a *Acceptor) Accept(ctx context.Context, parts []FilePart) ([]Descriptor, []Rejection, error) {
	if len(parts) > a.maxFiles {
		return nil, nil, domain.ErrTooManyFiles
	}

	var accepted []Descriptor
	var rejected []Rejection

	for _, part := range parts {
		if _, ok := a.allowedTypes[part.ContentType]; !ok {
			rejected = append(rejected, Rejection{
				Filename: part.Filename,
				Reason:   fmt.Sprintf("content type %q is not allowed", part.ContentType),
			})
			continue
		}

		if part.Size > a.maxFileSize {
			rejected = append(rejected, Rejection{
				Filename: part.Filename,
				Reason:   fmt.Sprintf("file exceeds the %d byte limit", a.maxFileSize),
			})
			continue
		}

		filename := generateFilename(part.Filename)

		written, err := a.write(ctx, filename, part.Reader)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				_ = a.files.Delete(ctx, filename)
				rejected = append(rejected, Rejection{
					Filename: part.Filename,
					Reason:   "write timed out",
				})
				continue
			}
			a.cleanup(ctx, accepted)
			return nil, nil, fmt.Errorf("writing upload %s: %w", part.Filename, err)
		}

		// The declared size is client-supplied; re-check what actually
		// arrived on the wire.
		if written > a.maxFileSize {
			_ = a.files.Delete(ctx, filename)
			rejected = append(rejected, Rejection{
				Filename: part.Filename,
				Reason:   fmt.Sprintf("file exceeds the %d byte limit", a.maxFileSize),
			})
			continue
		}

		accepted = append(accepted, Descriptor{
			Filename:     filename,
			OriginalName: part.Filename,
			Size:         written,
			MimeType:     part.ContentType,
		})
	}

	return accepted, rejected, nil
}

func (a *Acceptor) write(ctx context.Context, filename string, reader io.Reader) (int64, error) {
	if a.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.writeTimeout)
		defer cancel()
	}
	return a.files.Save(ctx, filename, io.LimitReader(reader, a.maxFileSize+1))
}

func (a *Acceptor) cleanup(ctx context.Context, written []Descriptor) {
	for _, d := range written {
		_ = a.files.Delete(ctx, d.Filename)
	}
}

// generateFilename keeps only the original extension; the name itself is a
// fresh uuid.
func generateFilename(original string) string {
	ext := strings.ToLower(path.Ext(path.Base(original)))
	if len(ext) > 8 || strings.ContainsAny(ext, `/\%?#`) {
		ext = ""
	}
	return uuid.New().String() + ext
}
