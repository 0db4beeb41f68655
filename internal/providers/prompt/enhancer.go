package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Input carries the scene parameters the enhancer folds into the prompt.
type Input struct {
	Prompt      string
	Emotion     string
	Intensity   float64
	Style       string
	CameraAngle string
}

// Enhancer turns a raw scene description into an enriched generation prompt.
type Enhancer interface {
	Enhance(ctx context.Context, in Input) (string, error)
}

// Simulated stands in for an upstream text-generation provider. It waits a
// fixed delay to model the network round-trip, then fills one of two
// hand-authored templates.
type Simulated struct {
	delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

func (s *Simulated) Enhance(ctx context.Context, in Input) (string, error) {
	if err := wait(ctx, s.delay); err != nil {
		return "", err
	}

	titler := cases.Title(language.Und)
	intensity := Percent(in.Intensity)

	// Scenes mentioning a wheat field get the elaborate showcase template.
	if strings.Contains(strings.ToLower(in.Prompt), "wheat field") {
		return fmt.Sprintf(
			"Cinematic %s shot of a young boy with %s expression, running through a golden wheat field at golden hour. "+
				"Warm sunlight creates dramatic backlighting, wheat stalks swaying in gentle breeze. "+
				"Dynamic movement with %s cinematography, %s emotional intensity. "+
				"Professional color grading with warm amber tones.",
			in.CameraAngle, in.Emotion, in.Style, intensity,
		), nil
	}

	return fmt.Sprintf(
		"Professional %s %s shot featuring %s. Emotional tone: %s at %s intensity. "+
			"Cinematic lighting and composition optimized for AI generation.",
		titler.String(in.Style), in.CameraAngle, in.Prompt, in.Emotion, intensity,
	), nil
}

var _ Enhancer = (*Simulated)(nil)

// QuickContext holds the optional context for a standalone enhancement call.
type QuickContext struct {
	Emotion   string
	Intensity float64
	Style     string
}

// QuickImprovements is the fixed label set returned with every standalone
// enhancement.
var QuickImprovements = []string{
	"Added cinematic direction",
	"Enhanced emotional context",
	"Optimized for AI generation",
	"Improved visual descriptors",
}

// QuickEnhance produces the lightweight enhancement used by the standalone
// prompt endpoint. Unlike Enhance it models no provider latency.
func QuickEnhance(prompt string, qc QuickContext) string {
	return fmt.Sprintf(
		"Enhanced cinematic prompt: %s with %s emotion at %s intensity. Professional cinematography with %s style.",
		prompt, qc.Emotion, Percent(qc.Intensity), qc.Style,
	)
}

// Percent renders an intensity in [0,1] as a percentage label, e.g. "85%".
func Percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
