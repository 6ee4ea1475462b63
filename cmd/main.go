package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/scouting-system/config"
	"github.com/Dosada05/scouting-system/handlers"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/routes"
	"github.com/Dosada05/scouting-system/scheduler"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/storage"
)

const shutdownTimeout = 15 * time.Second

// @title Scouting System
// @version 1.0
// @description Scouting front-end for players, venues, tournaments and evaluations.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("api_base_url", cfg.APIBaseURL),
		slog.String("timezone", cfg.Location.String()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drafts, err := storage.NewBoltDraftStore(cfg.DraftsDBPath, logger)
	if err != nil {
		logger.Error("failed to open drafts database", slog.String("path", cfg.DraftsDBPath), slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := drafts.Close(); err != nil {
			logger.Error("failed to close drafts database", slog.Any("error", err))
		} else {
			logger.Info("drafts database closed")
		}
	}()

	r2cfg := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	var uploader storage.FileUploader
	if r2cfg.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, r2cfg, logger)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Warn("R2 settings missing, game videos are recorded by name only")
	}

	hub := live.NewHub(logger)
	go hub.Run(ctx)

	client := repositories.NewClient(cfg.APIBaseURL, cfg.BackendTimeout, logger)
	playerRepo := repositories.NewAPIPlayerRepository(client)
	venueRepo := repositories.NewAPIVenueRepository(client)
	tournamentRepo := repositories.NewAPITournamentRepository(client)
	evaluationRepo := repositories.NewAPIEvaluationRepository(client)
	opsRepo := repositories.NewAPIOpsRepository(client)

	collections := services.NewCollections(playerRepo, tournamentRepo, venueRepo, logger)
	if err := collections.RefreshAll(ctx); err != nil {
		// the pages show the error until the backend answers again
		logger.Warn("initial data load failed", slog.Any("error", err))
	}

	playerService := services.NewPlayerService(playerRepo, evaluationRepo, collections.Players, hub, logger)
	venueService := services.NewVenueService(venueRepo, collections.Venues, hub, logger)
	tournamentService := services.NewTournamentService(tournamentRepo, collections, drafts, hub, logger)
	editorService := services.NewEditorService(tournamentRepo, evaluationRepo, collections.Players, drafts, hub, logger,
		services.EditorOptions{
			Location:  cfg.Location,
			ScoutName: cfg.DefaultScoutName,
			Uploader:  uploader,
		})
	adminService := services.NewAdminService(opsRepo, collections, hub, logger)
	dashboardService := services.NewDashboardService(collections)

	if cfg.RefreshSchedulerEnabled {
		sched, err := scheduler.New(scheduler.Config{
			Enabled:  true,
			CronSpec: cfg.RefreshSchedulerCron,
		}, collections, hub, logger)
		if err != nil {
			logger.Error("failed to create refresh scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Players:     handlers.NewPlayerHandler(playerService),
		Venues:      handlers.NewVenueHandler(venueService),
		Tournaments: handlers.NewTournamentHandler(tournamentService),
		Editor:      handlers.NewEditorHandler(editorService),
		Games:       handlers.NewGameHandler(editorService),
		Admin:       handlers.NewAdminHandler(adminService),
		WebSocket:   handlers.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins, logger),
	}, cfg.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
		// game videos are streamed through to R2
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
			return
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	cancel()
	logger.Info("application exited")
}
