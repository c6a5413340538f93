package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrack-family/family-site-backend/internal/infrastructure/storage"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/images/gallery")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("writes the file and reports its size", func(t *testing.T) {
		written, err := store.Save(ctx, "photo.jpg", strings.NewReader("jpeg bytes"))

		require.NoError(t, err)
		assert.Equal(t, int64(len("jpeg bytes")), written)

		data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "jpeg bytes", string(data))
	})

	t.Run("strips path components from the filename", func(t *testing.T) {
		_, err := store.Save(ctx, "../escape.jpg", strings.NewReader("x"))

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "escape.jpg"))
		assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "escape.jpg"))
	})

	t.Run("cancelled context removes the partial file", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		<-ctx.Done()

		_, err := store.Save(ctx, "partial.jpg", strings.NewReader("never written"))

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NoFileExists(t, filepath.Join(dir, "partial.jpg"))
	})
}

func TestLocalStorage_Open(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/images/gallery")
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Save(ctx, "readback.jpg", strings.NewReader("contents"))
	require.NoError(t, err)

	f, err := store.Open(ctx, "readback.jpg")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))
}

func TestLocalStorage_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/images/gallery")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("removes a stored file", func(t *testing.T) {
		_, err := store.Save(ctx, "gone.jpg", strings.NewReader("x"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, "gone.jpg"))
		assert.NoFileExists(t, filepath.Join(dir, "gone.jpg"))
	})

	t.Run("an already absent file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed.jpg"))
	})
}

func TestLocalStorage_URL(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir(), "/images/gallery/")
	require.NoError(t, err)

	assert.Equal(t, "/images/gallery/abc.jpg", store.URL("abc.jpg"))
}
