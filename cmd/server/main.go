// Package main implements the entry point for the seimei API server,
// which scores Japanese personal names over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
)

// main is the entry point for the seimei-api server.
// It loads configuration, sets up logging, opens the character dictionary,
// wires the services and runs the HTTP server until a shutdown signal.
func main() {
	fmt.Println("Seimei API Server Starting...")

	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		app.logger.Error("server exited with error", slog.String("error", err.Error()))
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"dictionary_driver", cfg.Dictionary.Driver)

	return newApplication(ctx, cfg, l)
}
