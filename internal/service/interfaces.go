package service

import (
	"context"

	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService manages a user's belongings. Image bytes travel separately
// from the record; AddItem stores them and records the generated reference.
type ItemService interface {
	AddItem(ctx context.Context, item models.Item, image []byte, imageType string) (models.Item, error)
	GetItem(ctx context.Context, id, userID int64) (models.Item, error)
	GetAllItems(ctx context.Context, userID int64) ([]models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) error
	DeleteItem(ctx context.Context, id, userID int64) error
	LoadImage(ctx context.Context, name string) ([]byte, error)
}

// DocumentService manages a user's documents, mirroring ItemService.
type DocumentService interface {
	AddDocument(ctx context.Context, doc models.Document, image []byte, imageType string) (models.Document, error)
	GetDocument(ctx context.Context, id, userID int64) (models.Document, error)
	GetAllDocuments(ctx context.Context, userID int64) ([]models.Document, error)
	UpdateDocument(ctx context.Context, update models.DocumentUpdate) error
	DeleteDocument(ctx context.Context, id, userID int64) error
	LoadImage(ctx context.Context, name string) ([]byte, error)
}

// SearchService resolves free-form "where is my X" queries and produces
// typed-ahead suggestions over the user's records.
//
// Resolve returns an error only when the underlying store read fails;
// every other condition is expressed through the outcome. Suggest never
// fails outward: store failures degrade to an empty list.
type SearchService interface {
	ResolveItems(ctx context.Context, userID int64, query string) (search.Outcome, error)
	ResolveDocuments(ctx context.Context, userID int64, query string) (search.Outcome, error)
	SuggestItems(ctx context.Context, userID int64, input string) []models.Item
	SuggestDocuments(ctx context.Context, userID int64, input string) []models.Document
}
