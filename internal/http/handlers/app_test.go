package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"genx-server/internal/domain"
	"genx-server/internal/fusion"
	"genx-server/internal/infra"
	"genx-server/internal/jobs"
	"genx-server/internal/providers/audio"
	"genx-server/internal/providers/prompt"
	"genx-server/internal/providers/visual"
	"genx-server/internal/registry"
)

// newTestApp builds a fully wired App with zero provider delays and a
// running dispatcher.
func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &infra.Config{
		EstimatedTime: 30,
		WorkerCount:   2,
		JobQueueSize:  8,
		StageTimeout:  time.Second,
	}
	logger := zerolog.Nop()
	orch := fusion.NewOrchestrator(
		prompt.NewSimulated(0),
		visual.NewSimulated(0),
		audio.NewSimulated(0),
		fusion.NewSimulatedFuser(0),
		cfg.StageTimeout,
		logger,
	)
	reg := registry.NewMemory()
	dispatcher := jobs.NewDispatcher(orch, reg, cfg.WorkerCount, cfg.JobQueueSize, logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	dispatcher.Start(ctx)
	return NewApp(cfg, logger, reg, dispatcher, domain.DefaultModelCatalog())
}

type noopProcessor struct{}

func (noopProcessor) Process(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	return &domain.GenerationResult{}, nil
}

// newIdleDispatcher returns an unstarted dispatcher with a single queue
// slot, sharing the app's registry.
func newIdleDispatcher(t *testing.T, app *App) *jobs.Dispatcher {
	t.Helper()
	return jobs.NewDispatcher(noopProcessor{}, app.Registry, 1, 1, zerolog.Nop())
}

// waitForJob polls the registry until the job leaves the processing state.
func waitForJob(t *testing.T, app *App, jobID string) *domain.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := app.Registry.Lookup(context.Background(), jobID)
		if err != nil {
			t.Fatalf("Lookup() unexpected error: %v", err)
		}
		if job.Status != domain.JobStatusProcessing {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s stuck in processing", jobID)
	return nil
}
