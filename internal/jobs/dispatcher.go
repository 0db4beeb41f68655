package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"genx-server/internal/domain"
	"genx-server/internal/registry"
)

// Processor runs the generation pipeline for one request. Satisfied by
// fusion.Orchestrator.
type Processor interface {
	Process(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

type task struct {
	jobID string
	req   domain.GenerationRequest
}

// Dispatcher bridges acceptance and execution: the HTTP boundary enqueues
// registered jobs, a pool of workers runs the pipeline and records the real
// outcome in the registry.
type Dispatcher struct {
	proc    Processor
	reg     registry.Registry
	queue   chan task
	workers int
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(proc Processor, reg registry.Registry, workers, queueSize int, logger zerolog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		proc:    proc,
		reg:     reg,
		queue:   make(chan task, queueSize),
		workers: workers,
		logger:  logger,
	}
}

// Start launches the worker pool. Workers exit when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.run(ctx)
		}()
	}
	d.logger.Info().Int("workers", d.workers).Msg("dispatcher: started")
}

// Wait blocks until every worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a registered job to the worker pool without blocking the
// request path. A full queue is reported to the caller rather than absorbed.
func (d *Dispatcher) Enqueue(jobID string, req domain.GenerationRequest) error {
	select {
	case d.queue <- task{jobID: jobID, req: req}:
		return nil
	default:
		return fmt.Errorf("job %s: %w", jobID, domain.ErrQueueFull)
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-d.queue:
			d.handle(ctx, t)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, t task) {
	d.logger.Info().Str("job_id", t.jobID).Str("scene_id", t.req.SceneID).Msg("dispatcher: picked job")

	if err := d.reg.Start(ctx, t.jobID); err != nil {
		d.logger.Error().Err(err).Str("job_id", t.jobID).Msg("dispatcher: failed to mark job started")
		return
	}

	result, err := d.proc.Process(ctx, t.req)
	if err != nil {
		d.logger.Error().Err(err).Str("job_id", t.jobID).Msg("dispatcher: job failed")
		if ferr := d.reg.Fail(ctx, t.jobID, err.Error()); ferr != nil {
			d.logger.Error().Err(ferr).Str("job_id", t.jobID).Msg("dispatcher: failed to record failure")
		}
		return
	}

	if err := d.reg.Complete(ctx, t.jobID, result); err != nil {
		d.logger.Error().Err(err).Str("job_id", t.jobID).Msg("dispatcher: failed to record result")
		return
	}
	d.logger.Info().
		Str("job_id", t.jobID).
		Str("request_id", result.RequestID).
		Float64("processing_time", result.ProcessingTime).
		Msg("dispatcher: job completed")
}
