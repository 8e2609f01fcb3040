package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-stash-find/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	createItem = `INSERT INTO items (user_id, item_name, location, category, image_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, item_name, location, category, image_ref, created_at;`

	getItem = `SELECT id, user_id, item_name, location, category, image_ref, created_at
		FROM items
		WHERE id = $1 AND user_id = $2;`

	getAllItems = `SELECT id, user_id, item_name, location, category, image_ref, created_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;`

	deleteItem = `DELETE FROM items
		WHERE id = $1 AND user_id = $2;`

	createDocument = `INSERT INTO documents (user_id, document_name, document_type, notes, tags, image_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, document_name, document_type, notes, tags, image_ref, created_at;`

	getDocument = `SELECT id, user_id, document_name, document_type, notes, tags, image_ref, created_at
		FROM documents
		WHERE id = $1 AND user_id = $2;`

	getAllDocuments = `SELECT id, user_id, document_name, document_type, notes, tags, image_ref, created_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;`

	deleteDocument = `DELETE FROM documents
		WHERE id = $1 AND user_id = $2;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildItemUpdateQuery builds a dynamic UPDATE for a belonging. Only non-nil
// fields of update produce SET clauses; the row is always scoped by id and
// user_id.
//
// Returns ErrBuildingSQLQuery when update carries no fields to set.
func buildItemUpdateQuery(update models.ItemUpdate) (string, []any, error) {
	if !update.HasChanges() {
		return "", nil, fmt.Errorf("%w: item update has no fields to set", ErrBuildingSQLQuery)
	}

	builder := psql.Update("items")

	if update.ItemName != nil {
		builder = builder.Set("item_name", *update.ItemName)
	}
	if update.Location != nil {
		builder = builder.Set("location", *update.Location)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.ImageRef != nil {
		builder = builder.Set("image_ref", *update.ImageRef)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDocumentUpdateQuery builds a dynamic UPDATE for a document. Only
// non-nil fields of update produce SET clauses.
//
// Returns ErrBuildingSQLQuery when update carries no fields to set.
func buildDocumentUpdateQuery(update models.DocumentUpdate) (string, []any, error) {
	if !update.HasChanges() {
		return "", nil, fmt.Errorf("%w: document update has no fields to set", ErrBuildingSQLQuery)
	}

	builder := psql.Update("documents")

	if update.DocumentName != nil {
		builder = builder.Set("document_name", *update.DocumentName)
	}
	if update.DocumentType != nil {
		builder = builder.Set("document_type", *update.DocumentType)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", *update.Tags)
	}
	if update.ImageRef != nil {
		builder = builder.Set("image_ref", *update.ImageRef)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
