package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImageStorage(t *testing.T) (ImageFileStorage, string) {
	dir := t.TempDir()
	return NewImageFileStorage(dir, logger.NewLogger("test")), dir
}

func TestImageFileStorage_SaveAndLoad(t *testing.T) {
	storage, dir := newTestImageStorage(t)
	ctx := context.Background()

	payload := []byte("fake png bytes")
	require.NoError(t, storage.SaveImage(ctx, "img-1.png", payload))

	// file lands under the configured directory
	_, err := os.Stat(filepath.Join(dir, "img-1.png"))
	require.NoError(t, err)

	loaded, err := storage.LoadImage(ctx, "img-1.png")
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestImageFileStorage_LoadMissing(t *testing.T) {
	storage, _ := newTestImageStorage(t)

	_, err := storage.LoadImage(context.Background(), "does-not-exist.png")
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestImageFileStorage_DeleteIsIdempotent(t *testing.T) {
	storage, _ := newTestImageStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SaveImage(ctx, "img-2.png", []byte("data")))
	require.NoError(t, storage.DeleteImage(ctx, "img-2.png"))
	require.NoError(t, storage.DeleteImage(ctx, "img-2.png"))

	_, err := storage.LoadImage(ctx, "img-2.png")
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestImageFileStorage_RejectsPathTraversal(t *testing.T) {
	storage, _ := newTestImageStorage(t)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../escape.png", "a/b.png", `a\b.png`} {
		t.Run(name, func(t *testing.T) {
			err := storage.SaveImage(ctx, name, []byte("data"))
			assert.True(t, errors.Is(err, ErrInvalidImageName), "SaveImage(%q) = %v", name, err)

			_, err = storage.LoadImage(ctx, name)
			assert.True(t, errors.Is(err, ErrInvalidImageName), "LoadImage(%q) = %v", name, err)

			err = storage.DeleteImage(ctx, name)
			assert.True(t, errors.Is(err, ErrInvalidImageName), "DeleteImage(%q) = %v", name, err)
		})
	}
}

func TestImageFileStorage_CreatesDirOnFirstSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	storage := NewImageFileStorage(dir, logger.NewLogger("test"))

	require.NoError(t, storage.SaveImage(context.Background(), "img.png", []byte("data")))

	_, err := os.Stat(filepath.Join(dir, "img.png"))
	require.NoError(t, err)
}
