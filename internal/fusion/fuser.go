package fusion

import (
	"context"
	"fmt"
	"time"

	"genx-server/internal/domain"
)

// Fuser merges independently generated modality outputs into one
// synchronized timeline.
type Fuser interface {
	Fuse(ctx context.Context, visual *domain.VisualOutput, audio *domain.AudioOutput, req domain.GenerationRequest) (*domain.FusedOutput, error)
}

// SimulatedFuser models the fusion stage: a fixed delay followed by an
// illustrative timeline. The timeline constants are placeholders for real
// alignment analysis; the selection and shape of the output are the
// contract.
type SimulatedFuser struct {
	delay time.Duration
}

func NewSimulatedFuser(delay time.Duration) *SimulatedFuser {
	return &SimulatedFuser{delay: delay}
}

func (f *SimulatedFuser) Fuse(ctx context.Context, visual *domain.VisualOutput, audio *domain.AudioOutput, req domain.GenerationRequest) (*domain.FusedOutput, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if visual == nil || len(visual.Videos) == 0 {
		return nil, fmt.Errorf("fuse scene %s: no video output: %w", req.SceneID, domain.ErrProviderFailure)
	}
	if audio == nil {
		return nil, fmt.Errorf("fuse scene %s: no audio output: %w", req.SceneID, domain.ErrProviderFailure)
	}

	return &domain.FusedOutput{
		PrimaryContent: domain.PrimaryContent{
			Video: visual.Videos[0].URL,
			Audio: audio.Music.URL,
			Voice: audio.Voice.URL,
		},
		Timeline: domain.Timeline{
			TotalDuration:     10.0,
			EmotionPeaks:      []float64{2.5, 5.0, 8.5},
			CameraTransitions: []float64{0, 3.0, 6.0, 9.0},
			AudioSyncPoints:   []float64{0, 2.0, 4.0, 6.0, 8.0},
		},
		Scores: domain.FusionScores{
			VisualAudioSync:    0.96,
			EmotionalCoherence: 0.94,
			TechnicalQuality:   0.91,
			CreativeScore:      0.89,
		},
		RenderReady: domain.RenderFlags{
			FluxPipeline:       true,
			LipsyncEnabled:     true,
			SeedanceProcessing: true,
			WebGLOptimized:     true,
		},
	}, nil
}

var _ Fuser = (*SimulatedFuser)(nil)
