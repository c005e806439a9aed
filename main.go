package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vidbrief/archive"
	"vidbrief/config"
	"vidbrief/handlers/api"
	"vidbrief/logger"
	"vidbrief/metadata"
	"vidbrief/repository/sqlite"
	"vidbrief/services/video"
	"vidbrief/validation"
	"vidbrief/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.Init(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := sqlite.InitDB(cfg.Database.Path, sqlite.DBConfig{
		MaxConnections:     cfg.Database.MaxConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repository
	repo, err := sqlite.NewRepository(db)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Initialize worker client
	workerClient, err := worker.NewClient(worker.Config{
		BaseURL: cfg.Worker.BaseURL,
		Timeout: cfg.Worker.ProcessTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize worker client: %v", err)
	}

	// Initialize metadata provider
	provider, err := metadata.NewYoutube(context.Background(), cfg.Metadata.YoutubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize metadata provider: %v", err)
	}

	// Initialize video service
	videoService := video.NewService(
		repo,
		workerClient,
		provider,
		validation.NewValidator(),
		video.Config{
			ProcessTimeout: cfg.Worker.ProcessTimeout,
		},
	)

	// Optional result archive
	archiveCfg := archive.SpacesConfig{
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Region:    cfg.Archive.Region,
		Endpoint:  cfg.Archive.Endpoint,
		Bucket:    cfg.Archive.Bucket,
	}
	if archiveCfg.Enabled() {
		archiver, err := archive.NewSpacesClient(archiveCfg)
		if err != nil {
			log.Fatalf("Failed to initialize archive client: %v", err)
		}
		videoService = video.WithArchiver(videoService, archiver)
		appLogger.WithField("bucket", cfg.Archive.Bucket).Info("Result archive enabled")
	}

	// Initialize API server
	server := api.NewServer(cfg,
		api.WithService(videoService),
		api.WithLogger(appLogger),
	)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		appLogger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			appLogger.WithError(err).Error("Server shutdown error")
		}
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
