package fusion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"genx-server/internal/domain"
	"genx-server/internal/providers/audio"
	"genx-server/internal/providers/prompt"
	"genx-server/internal/providers/visual"
)

// ProcessingStages names the pipeline stages in execution order, as
// recorded in result metadata.
var ProcessingStages = []string{
	"text_enhancement",
	"visual_generation",
	"audio_generation",
	"fusion",
}

// Orchestrator sequences the four-stage generation pipeline for one
// request: enhance, then visuals and audio (mutually independent, run
// concurrently), then fuse.
type Orchestrator struct {
	enhancer     prompt.Enhancer
	visuals      visual.Generator
	audio        audio.Generator
	fuser        Fuser
	stageTimeout time.Duration
	logger       zerolog.Logger
}

func NewOrchestrator(enhancer prompt.Enhancer, visuals visual.Generator, audioGen audio.Generator, fuser Fuser, stageTimeout time.Duration, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		enhancer:     enhancer,
		visuals:      visuals,
		audio:        audioGen,
		fuser:        fuser,
		stageTimeout: stageTimeout,
		logger:       logger,
	}
}

// Process runs the pipeline and assembles the result. Every invocation
// produces a fresh request_id, even for identical inputs.
func (o *Orchestrator) Process(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	start := time.Now()
	requestID := uuid.NewString()

	o.logger.Info().
		Str("request_id", requestID).
		Str("scene_id", req.SceneID).
		Msg("starting multimodal processing")

	enhanced, err := o.enhance(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		visualOut *domain.VisualOutput
		audioOut  *domain.AudioOutput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visualOut, err = o.generateVisuals(gctx, req, enhanced)
		return err
	})
	g.Go(func() error {
		var err error
		audioOut, err = o.generateAudio(gctx, req, enhanced)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fused, err := o.fuse(ctx, visualOut, audioOut, req)
	if err != nil {
		return nil, err
	}

	result := &domain.GenerationResult{
		RequestID: requestID,
		SceneID:   req.SceneID,
		Status:    "completed",
		Outputs:   *fused,
		Metadata: domain.ResultMetadata{
			EnhancedPrompt:   enhanced,
			ModelsUsed:       req.Models,
			EmotionContext:   domain.EmotionContext{Emotion: req.Emotion, Intensity: req.Intensity},
			ProcessingStages: ProcessingStages,
		},
		ProcessingTime: time.Since(start).Seconds(),
	}

	o.logger.Info().
		Str("request_id", requestID).
		Str("scene_id", req.SceneID).
		Float64("processing_time", result.ProcessingTime).
		Msg("multimodal processing completed")

	return result, nil
}

func (o *Orchestrator) enhance(ctx context.Context, req domain.GenerationRequest) (string, error) {
	sctx, cancel := o.stageContext(ctx)
	defer cancel()
	enhanced, err := o.enhancer.Enhance(sctx, prompt.Input{
		Prompt:      req.TextPrompt,
		Emotion:     req.Emotion,
		Intensity:   req.Intensity,
		Style:       req.Style,
		CameraAngle: req.CameraAngle,
	})
	if err != nil {
		return "", stageError("text_enhancement", sctx, err)
	}
	return enhanced, nil
}

func (o *Orchestrator) generateVisuals(ctx context.Context, req domain.GenerationRequest, enhanced string) (*domain.VisualOutput, error) {
	sctx, cancel := o.stageContext(ctx)
	defer cancel()
	out, err := o.visuals.Generate(sctx, req, enhanced)
	if err != nil {
		return nil, stageError("visual_generation", sctx, err)
	}
	return out, nil
}

func (o *Orchestrator) generateAudio(ctx context.Context, req domain.GenerationRequest, enhanced string) (*domain.AudioOutput, error) {
	sctx, cancel := o.stageContext(ctx)
	defer cancel()
	out, err := o.audio.Generate(sctx, req, enhanced)
	if err != nil {
		return nil, stageError("audio_generation", sctx, err)
	}
	return out, nil
}

func (o *Orchestrator) fuse(ctx context.Context, visualOut *domain.VisualOutput, audioOut *domain.AudioOutput, req domain.GenerationRequest) (*domain.FusedOutput, error) {
	sctx, cancel := o.stageContext(ctx)
	defer cancel()
	fused, err := o.fuser.Fuse(sctx, visualOut, audioOut, req)
	if err != nil {
		return nil, stageError("fusion", sctx, err)
	}
	return fused, nil
}

func (o *Orchestrator) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.stageTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.stageTimeout)
}

// stageError classifies a stage failure: deadline expiry becomes
// ErrStageTimeout, caller cancellation passes through, anything else is a
// provider failure. No stage is retried.
func stageError(stage string, sctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) && errors.Is(sctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", stage, domain.ErrStageTimeout)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", stage, err)
	case errors.Is(err, domain.ErrProviderFailure):
		return fmt.Errorf("%s: %w", stage, err)
	default:
		return fmt.Errorf("%s: %v: %w", stage, err, domain.ErrProviderFailure)
	}
}
