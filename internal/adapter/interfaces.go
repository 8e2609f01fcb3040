// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-stash-find server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stash-find/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-stash-find server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success the bearer token from the
	// Authorization response header is stored via SetToken and the returned
	// user carries the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account. On success the bearer token
	// is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// ListItems fetches the user's belongings, newest first.
	ListItems(ctx context.Context) ([]models.Item, error)

	// CreateItem stores a new belonging and returns it with server-assigned
	// fields populated.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// DeleteItem removes a belonging. Returns [ErrNotFound] (wrapped) when
	// the record does not exist.
	DeleteItem(ctx context.Context, id int64) error

	// ListDocuments fetches the user's documents, newest first.
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// CreateDocument stores a new document.
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id int64) error
}
