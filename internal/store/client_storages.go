package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [SnapshotCache]; additional repositories can be added here as
// the feature set grows.
type ClientStorages struct {
	// Cache is the SQLite-backed snapshot of the user's records used for
	// offline lookups.
	Cache SnapshotCache
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in
//     cfg.Cache.DSN, creating the database file if it does not yet exist.
//  2. Creates the cache schema when missing.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SnapshotCache].
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Cache: NewSnapshotCache(db, logger),
	}, nil
}
