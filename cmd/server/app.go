package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/seimei-api/internal/config"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/phrazzld/seimei-api/internal/platform/dictionary"
	"github.com/phrazzld/seimei-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	dictionary *dictionary.Dictionary

	scorer        kantei.Service
	seimeiService service.SeimeiService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.scorer, err = service.NewScorer(cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scoring service: %w", err)
	}

	app.dictionary, err = dictionary.Open(ctx, cfg.Dictionary, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}

	app.seimeiService, err = service.NewSeimeiService(app.dictionary, app.scorer, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize seimei service: %w", err)
	}

	logger.Info("application initialized",
		"dictionary_driver", app.dictionary.Driver())
	return app, nil
}

// cleanup releases resources held by the application. It is safe to call
// more than once.
func (app *application) cleanup() {
	if app.dictionary == nil {
		return
	}
	if err := app.dictionary.Close(); err != nil {
		app.logger.Error("failed to close dictionary", "error", err)
	}
	app.dictionary = nil
}
