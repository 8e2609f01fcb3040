package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/logger"
)

// imageFileStorage is the filesystem-backed implementation of
// [ImageFileStorage]. Images are stored as flat files under a single
// directory; the database rows keep only the generated file name in their
// image_ref column.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage constructs an [ImageFileStorage] rooted at dir.
// The directory is created on first save, not at construction time.
func NewImageFileStorage(dir string, logger *logger.Logger) ImageFileStorage {
	logger.Debug().Str("dir", dir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// validImageName rejects names that could escape the image directory.
// References are opaque generated names, never user-supplied paths.
func validImageName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// SaveImage writes an image under the storage directory, creating the
// directory if needed.
func (s *imageFileStorage) SaveImage(ctx context.Context, name string, data []byte) error {
	log := logger.FromContext(ctx)

	if !validImageName(name) {
		return ErrInvalidImageName
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "imageFileStorage.SaveImage").Msg("failed to create image directory")
		return fmt.Errorf("create image dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
		log.Err(err).
			Str("func", "imageFileStorage.SaveImage").
			Str("name", name).
			Msg("failed to write image file")
		return fmt.Errorf("write image file: %w", err)
	}

	return nil
}

// LoadImage reads a previously saved image.
//
// Returns [ErrImageNotFound] when no file exists under the given name.
func (s *imageFileStorage) LoadImage(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if !validImageName(name) {
		return nil, ErrInvalidImageName
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrImageNotFound
		}

		log.Err(err).
			Str("func", "imageFileStorage.LoadImage").
			Str("name", name).
			Msg("failed to read image file")
		return nil, fmt.Errorf("read image file: %w", err)
	}

	return data, nil
}

// DeleteImage removes a saved image. Deleting a name that does not exist is
// not an error; record deletion must stay idempotent.
func (s *imageFileStorage) DeleteImage(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if !validImageName(name) {
		return ErrInvalidImageName
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Err(err).
			Str("func", "imageFileStorage.DeleteImage").
			Str("name", name).
			Msg("failed to remove image file")
		return fmt.Errorf("remove image file: %w", err)
	}

	return nil
}
