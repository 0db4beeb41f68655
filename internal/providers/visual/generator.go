package visual

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"time"

	"genx-server/internal/domain"
)

// Generator produces image and video descriptors from an enhanced prompt.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest, enhanced string) (*domain.VisualOutput, error)
}

// Simulated models a Pollinations-style rendering backend: a fixed delay
// followed by deterministic URL templating. Exactly one image and one video
// descriptor are produced per call.
type Simulated struct {
	delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

func (g *Simulated) Generate(ctx context.Context, req domain.GenerationRequest, enhanced string) (*domain.VisualOutput, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	escaped := url.PathEscape(enhanced)
	return &domain.VisualOutput{
		Images: []domain.ImageDescriptor{{
			URL:              fmt.Sprintf("https://image.pollinations.ai/prompt/%s?width=1920&height=1080&seed=%d", escaped, SceneSeed(req.SceneID)),
			Style:            req.Style,
			EmotionAccuracy:  0.92,
			TechnicalQuality: 0.89,
		}},
		Videos: []domain.VideoDescriptor{{
			URL:           fmt.Sprintf("https://video.pollinations.ai/prompt/%s?duration=10&fps=30", escaped),
			CameraWork:    req.CameraAngle,
			MotionQuality: 0.87,
			EmotionalSync: 0.94,
		}},
	}, nil
}

var _ Generator = (*Simulated)(nil)

// SceneSeed derives a reproducible render seed from a scene identifier.
// FNV-1a is used deliberately: the seed must be stable across processes and
// restarts, which language-default hashing does not guarantee.
func SceneSeed(sceneID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sceneID))
	return h.Sum32() % 10000
}
