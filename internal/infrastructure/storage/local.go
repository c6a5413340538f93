package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads to a directory inside the served static tree, so
// stored files are reachable at <publicPath>/<filename> without extra plumbing.
type LocalStorage struct {
	dir        string
	publicPath string
}

func NewLocalStorage(dir, publicPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStorage{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, filename string, reader io.Reader) (int64, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))

	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}

	written, err := copyContext(ctx, out, reader)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("writing file: %w", err)
	}

	return written, nil
}

func (s *LocalStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return f, nil
}

func (s *LocalStorage) Delete(ctx context.Context, filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(filename string) string {
	return s.publicPath + "/" + filename
}

// copyContext copies in 32KiB chunks, checking for cancellation between chunks
// so a per-file write timeout actually interrupts a slow write.
func copyContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, 32*1024)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, werr
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}
