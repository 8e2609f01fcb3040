package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It executes all document CRUD operations against the
// "documents" table using the embedded [*DB] connection.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDocument persists a new document and returns it with server-assigned
// fields (ID, CreatedAt) populated from the RETURNING clause.
func (r *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createDocument,
		doc.UserID, doc.DocumentName, doc.DocumentType, doc.Notes, doc.Tags, doc.ImageRef)

	if err := row.Scan(&doc.ID, &doc.UserID, &doc.DocumentName, &doc.DocumentType, &doc.Notes, &doc.Tags, &doc.ImageRef, &doc.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "documentRepository.CreateDocument").
			Int64("user_id", doc.UserID).
			Msg("failed to insert document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc, nil
}

// GetDocument retrieves a single document scoped by id and owner.
//
// Returns [ErrDocumentNotFound] when no row matches.
func (r *documentRepository) GetDocument(ctx context.Context, id, userID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var doc models.Document
	row := r.QueryRowContext(ctx, getDocument, id, userID)

	if err := row.Scan(&doc.ID, &doc.UserID, &doc.DocumentName, &doc.DocumentType, &doc.Notes, &doc.Tags, &doc.ImageRef, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}

		log.Err(err).
			Str("func", "documentRepository.GetDocument").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// GetAllDocuments retrieves every document owned by the given user, newest
// first. Returns an empty slice when no records exist.
func (r *documentRepository) GetAllDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, getAllDocuments, userID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.GetAllDocuments").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 50)

	for rows.Next() {
		var doc models.Document

		if scanErr := rows.Scan(&doc.ID, &doc.UserID, &doc.DocumentName, &doc.DocumentType, &doc.Notes, &doc.Tags, &doc.ImageRef, &doc.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.GetAllDocuments").
				Int64("user_id", userID).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.GetAllDocuments").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

// UpdateDocument applies a partial update built by
// [buildDocumentUpdateQuery].
//
// Returns [ErrDocumentNotFound] when the target row does not exist.
func (r *documentRepository) UpdateDocument(ctx context.Context, update models.DocumentUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDocumentUpdateQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.UpdateDocument").
			Int64("user_id", update.UserID).
			Int64("id", update.ID).
			Msg("failed to build update query")
		return err
	}

	result, err := r.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.UpdateDocument").
			Int64("user_id", update.UserID).
			Int64("id", update.ID).
			Msg("failed to execute document update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// DeleteDocument removes a document scoped by id and owner.
//
// Returns [ErrDocumentNotFound] when the target row does not exist.
func (r *documentRepository) DeleteDocument(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.execWithRetry(ctx, deleteDocument, id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to execute document delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
