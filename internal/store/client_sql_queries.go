// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createCachedItemsTable = `
		CREATE TABLE IF NOT EXISTS cached_items (
			id         INTEGER PRIMARY KEY,
			user_id    INTEGER NOT NULL,
			item_name  TEXT    NOT NULL,
			location   TEXT    NOT NULL,
			category   TEXT    NOT NULL DEFAULT '',
			image_ref  TEXT    NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);`

	createCachedDocumentsTable = `
		CREATE TABLE IF NOT EXISTS cached_documents (
			id            INTEGER PRIMARY KEY,
			user_id       INTEGER NOT NULL,
			document_name TEXT    NOT NULL,
			document_type TEXT    NOT NULL,
			notes         TEXT    NOT NULL DEFAULT '',
			tags          TEXT    NOT NULL DEFAULT '',
			image_ref     TEXT    NOT NULL DEFAULT '',
			created_at    TIMESTAMP NOT NULL
		);`

	createCacheMetaTable = `
		CREATE TABLE IF NOT EXISTS cache_meta (
			key   TEXT PRIMARY KEY,
			value TIMESTAMP NOT NULL
		);`

	deleteAllCachedItems = `DELETE FROM cached_items;`

	insertCachedItem = `
		INSERT INTO cached_items (
			id,
			user_id,
			item_name,
			location,
			category,
			image_ref,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	listCachedItems = `
		SELECT
			id,
			user_id,
			item_name,
			location,
			category,
			image_ref,
			created_at
		FROM cached_items
		ORDER BY created_at DESC, id DESC;`

	deleteAllCachedDocuments = `DELETE FROM cached_documents;`

	insertCachedDocument = `
		INSERT INTO cached_documents (
			id,
			user_id,
			document_name,
			document_type,
			notes,
			tags,
			image_ref,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	listCachedDocuments = `
		SELECT
			id,
			user_id,
			document_name,
			document_type,
			notes,
			tags,
			image_ref,
			created_at
		FROM cached_documents
		ORDER BY created_at DESC, id DESC;`

	upsertLastRefreshed = `
		INSERT INTO cache_meta (key, value) VALUES ('last_refreshed', $1)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getLastRefreshed = `SELECT value FROM cache_meta WHERE key = 'last_refreshed';`
)
