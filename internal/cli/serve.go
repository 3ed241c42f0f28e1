package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wildlog/wildlog_api/internal/api"
	"github.com/wildlog/wildlog_api/internal/auth"
	"github.com/wildlog/wildlog_api/internal/cache"
	"github.com/wildlog/wildlog_api/internal/catalog"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/database"
	"github.com/wildlog/wildlog_api/internal/filestore"
	"github.com/wildlog/wildlog_api/internal/progression"
	"github.com/wildlog/wildlog_api/internal/recognizer"
	"github.com/wildlog/wildlog_api/internal/stats"
	"github.com/wildlog/wildlog_api/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	loaded, err := catalog.Load(cfg.Progression.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, warning := range loaded.Warnings {
		logger.Warnf("catalog: %s", warning)
	}

	st, err := store.NewPGStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	if err := database.RunMigrations(st.Conn(), cfg); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fileStore, err := filestore.NewMinioStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create file store: %w", err)
	}

	authManager, err := auth.NewJWTManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create auth manager: %w", err)
	}

	counter := cache.New(ctx, cfg.Redis, logger)
	if closer, ok := counter.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	engine := progression.NewEngine(loaded.Catalog, engineSettings(cfg.Progression))
	progress := stats.NewService(logger, st, engine, counter, cfg.Progression)
	rec := recognizer.NewRecognizer(logger, st, fileStore, progress, cfg.Recognizer)

	server := api.NewServer(cfg, st, fileStore, authManager, progress, rec, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	signCh := make(chan os.Signal, 1)
	signal.Notify(signCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-signCh:
	}

	logger.Info("shutting down gracefully...")
	if err := server.Shutdown(); err != nil {
		logger.WithError(err).Error("error during shutdown")
	}
	rec.Wait()

	return nil
}

func engineSettings(cfg config.ProgressionConfig) progression.Settings {
	return progression.Settings{
		Mode:         progression.XPMode(cfg.XPMode),
		SpamSpecies:  cfg.SpamSpecies,
		SpamDailyCap: cfg.SpamDailyCap,
	}
}
