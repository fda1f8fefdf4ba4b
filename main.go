// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"room-booking/cmd"
	"room-booking/internal/data/repository"
	"room-booking/internal/wire"
	"room-booking/pkg/apiclient"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("api", config.API.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the device-local session store
	sessions, err := repository.OpenSessionRepository(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to open session store", zap.Error(err), zap.String("driver", config.Session.Driver))
	}
	defer sessions.Close()

	logger.Info("Session store ready",
		zap.String("driver", config.Session.Driver),
		zap.Bool("sealed", config.Session.Secret != ""),
	)

	// Initialize all repositories
	repos := repository.NewRepository(apiclient.New(config.API, logger), sessions, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
