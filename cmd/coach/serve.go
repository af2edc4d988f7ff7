package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/api"
	"github.com/yourname/fitcoach/internal/auth"
	"github.com/yourname/fitcoach/internal/config"
	"github.com/yourname/fitcoach/internal/engine"
	"github.com/yourname/fitcoach/internal/service"
	"github.com/yourname/fitcoach/internal/storage"
)

// app wires the service graph together for the HTTP handlers.
type app struct {
	logger internal.Logger
	chat   *service.ChatService
}

func (a *app) Logger() internal.Logger    { return a.logger }
func (a *app) Chat() *service.ChatService { return a.chat }

var _ api.App = (*app)(nil)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the chat HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			logger, err := internal.NewLogger(cfg.Env)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}

			turnRepo, profileRepo, err := newRepositories(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to init storage: %w", err)
			}

			var provider auth.Provider
			if cfg.Env == "development" {
				provider = auth.NewLocalAuthProvider(cfg.APIToken, logger)
			} else {
				provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
			}

			bot := engine.New(logger)
			chat := service.NewChatService(bot, turnRepo, profileRepo, logger)

			r := api.NewRouter(&app{logger: logger, chat: chat}, provider, cfg)
			logger.Infof("Server running on %s", cfg.ListenAddr)
			return r.Run(cfg.ListenAddr)
		},
	}
}

func newRepositories(cfg *config.Config, logger internal.Logger) (storage.TurnRepository, storage.ProfileRepository, error) {
	if cfg.StorageBackend == "postgres" {
		return storage.NewPostgresRepositories(cfg.PostgresDSN, logger)
	}
	if dir := filepath.Dir(cfg.TurnsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	if dir := filepath.Dir(cfg.ProfilesFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	return storage.NewFileRepositories(cfg.TurnsFile, cfg.ProfilesFile, logger)
}
