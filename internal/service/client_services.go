package service

import (
	"github.com/MKhiriev/go-stash-find/internal/adapter"
	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	RecordService ClientRecordService
	FindService   ClientFindService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(serverAdapter, logger),
		RecordService: NewClientRecordService(serverAdapter, localStore.Cache, logger),
		FindService:   NewClientFindService(localStore.Cache, cfg.Search, logger),
	}
}
