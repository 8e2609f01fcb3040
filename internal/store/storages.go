package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	ItemRepository     ItemRepository
	DocumentRepository DocumentRepository
	ImageFileStorage   ImageFileStorage
}

// NewStorages initialises the server storage layer:
//  1. Connects to PostgreSQL using cfg.DB.DSN.
//  2. Applies pending schema migrations.
//  3. Wires the user, item, document, and image repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ItemRepository:     NewItemRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		ImageFileStorage:   NewImageFileStorage(cfg.Files.ImageDir, logger),
	}, nil
}
