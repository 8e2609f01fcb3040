package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It executes all belonging CRUD operations against the "items" table using
// the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, item id, etc.).
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem persists a new belonging and returns it with server-assigned
// fields (ID, CreatedAt) populated from the RETURNING clause.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createItem,
		item.UserID, item.ItemName, item.Location, item.Category, item.ImageRef)

	if err := row.Scan(&item.ID, &item.UserID, &item.ItemName, &item.Location, &item.Category, &item.ImageRef, &item.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Int64("user_id", item.UserID).
			Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// GetItem retrieves a single belonging scoped by id and owner.
//
// Returns [ErrItemNotFound] when no row matches.
func (r *itemRepository) GetItem(ctx context.Context, id, userID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.QueryRowContext(ctx, getItem, id, userID)

	if err := row.Scan(&item.ID, &item.UserID, &item.ItemName, &item.Location, &item.Category, &item.ImageRef, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to scan item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// GetAllItems retrieves every belonging owned by the given user, newest
// first. Returns an empty slice when no records exist.
func (r *itemRepository) GetAllItems(ctx context.Context, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, getAllItems, userID)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetAllItems").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)

	for rows.Next() {
		var item models.Item

		if scanErr := rows.Scan(&item.ID, &item.UserID, &item.ItemName, &item.Location, &item.Category, &item.ImageRef, &item.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.GetAllItems").
				Int64("user_id", userID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.GetAllItems").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// UpdateItem applies a partial update built by [buildItemUpdateQuery].
//
// Returns [ErrItemNotFound] when the target row does not exist.
func (r *itemRepository) UpdateItem(ctx context.Context, update models.ItemUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildItemUpdateQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Int64("user_id", update.UserID).
			Int64("id", update.ID).
			Msg("failed to build update query")
		return err
	}

	result, err := r.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Int64("user_id", update.UserID).
			Int64("id", update.ID).
			Msg("failed to execute item update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes a belonging scoped by id and owner.
//
// Returns [ErrItemNotFound] when the target row does not exist.
func (r *itemRepository) DeleteItem(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.execWithRetry(ctx, deleteItem, id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to execute item delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
