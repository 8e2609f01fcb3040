package service

import (
	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/store"
)

type Services struct {
	AuthService     AuthService
	ItemService     ItemService
	DocumentService DocumentService
	SearchService   SearchService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ItemService:     NewItemService(storages.ItemRepository, storages.ImageFileStorage, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, storages.ImageFileStorage, logger),
		SearchService:   NewSearchService(storages.ItemRepository, storages.DocumentRepository, cfg.Search, logger),
	}
}
