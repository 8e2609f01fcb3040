package store

import (
	"context"

	"github.com/MKhiriev/go-stash-find/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// ItemRepository persists belongings. GetAllItems returns records newest
// first; search snapshots rely on that order.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id, userID int64) (models.Item, error)
	GetAllItems(ctx context.Context, userID int64) ([]models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) error
	DeleteItem(ctx context.Context, id, userID int64) error
}

// DocumentRepository persists documents. GetAllDocuments returns records
// newest first.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	GetDocument(ctx context.Context, id, userID int64) (models.Document, error)
	GetAllDocuments(ctx context.Context, userID int64) ([]models.Document, error)
	UpdateDocument(ctx context.Context, update models.DocumentUpdate) error
	DeleteDocument(ctx context.Context, id, userID int64) error
}

// ImageFileStorage persists record images outside the relational database.
// Names are opaque references generated by the service layer.
type ImageFileStorage interface {
	SaveImage(ctx context.Context, name string, data []byte) error
	LoadImage(ctx context.Context, name string) ([]byte, error)
	DeleteImage(ctx context.Context, name string) error
}
