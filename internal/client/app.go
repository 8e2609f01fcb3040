package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/adapter"
	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/internal/tui"
	"github.com/MKhiriev/go-stash-find/internal/workers"
)

type App struct {
	services   *service.ClientServices
	refreshJob workers.Job
	tui        *tui.TUI
	logger     *logger.Logger
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStore, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	svcs := service.NewClientServices(localStore, serverAdapter, cfg, log)
	refreshJob := workers.NewSnapshotRefreshJob(svcs.RecordService, cfg.Workers.RefreshInterval, log)

	return &App{
		services:   svcs,
		refreshJob: refreshJob,
		tui:        tui.New(svcs, log),
		logger:     log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("user authenticated")

	// the job performs the initial snapshot pull on start
	a.refreshJob.Start(ctx)
	defer a.refreshJob.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		a.refreshJob.Stop()
		return a.Run()
	}

	return nil
}
