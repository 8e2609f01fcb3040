package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/adapter"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// Register implements ClientAuthService. On success the adapter has stored
// the bearer token and the returned user carries the server-assigned UserID.
func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.logger.Info().
		Str("func", "clientAuthService.Register").
		Str("login", registered.Login).
		Msg("registered on server")

	return registered, nil
}

// Login implements ClientAuthService.
func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	foundUser, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return foundUser, nil
}
