package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"genx-server/internal/domain"
	"genx-server/internal/fusion"
	"genx-server/internal/http/handlers"
	"genx-server/internal/http/httpapi"
	"genx-server/internal/infra"
	"genx-server/internal/jobs"
	"genx-server/internal/providers/audio"
	"genx-server/internal/providers/prompt"
	"genx-server/internal/providers/visual"
	"genx-server/internal/registry"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := domain.DefaultModelCatalog()
	if cfg.ModelCatalogPath != "" {
		loaded, err := domain.LoadModelCatalog(cfg.ModelCatalogPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.ModelCatalogPath).Msg("falling back to built-in model catalog")
		} else {
			catalog = loaded
		}
	}

	orchestrator := fusion.NewOrchestrator(
		prompt.NewSimulated(cfg.EnhanceDelay),
		visual.NewSimulated(cfg.VisualDelay),
		audio.NewSimulated(cfg.AudioDelay),
		fusion.NewSimulatedFuser(cfg.FusionDelay),
		cfg.StageTimeout,
		logger,
	)

	reg := registry.NewMemory()
	dispatcher := jobs.NewDispatcher(orchestrator, reg, cfg.WorkerCount, cfg.JobQueueSize, logger)
	dispatcher.Start(ctx)

	app := handlers.NewApp(cfg, logger, reg, dispatcher, catalog)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	dispatcher.Wait()
	logger.Info().Msg("server stopped")
}
