package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelInfo describes one selectable model in the fusion catalog.
type ModelInfo struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ModelCatalog groups the available models by modality.
type ModelCatalog struct {
	Text  []ModelInfo `json:"text_models" yaml:"text_models"`
	Image []ModelInfo `json:"image_models" yaml:"image_models"`
	Video []ModelInfo `json:"video_models" yaml:"video_models"`
	Audio []ModelInfo `json:"audio_models" yaml:"audio_models"`
}

// DefaultModelCatalog returns the built-in catalog served when no override
// file is configured.
func DefaultModelCatalog() ModelCatalog {
	return ModelCatalog{
		Text: []ModelInfo{
			{ID: "claude-3-haiku", Name: "Claude 3 Haiku", Type: "fast"},
			{ID: "gpt-4", Name: "GPT-4", Type: "premium"},
			{ID: "gemini-pro", Name: "Gemini Pro", Type: "balanced"},
		},
		Image: []ModelInfo{
			{ID: "flux", Name: "Flux", Type: "photorealistic"},
			{ID: "flux-realism", Name: "Flux Realism", Type: "hyperrealistic"},
			{ID: "flux-anime", Name: "Flux Anime", Type: "artistic"},
		},
		Video: []ModelInfo{
			{ID: "seedance", Name: "Seedance", Type: "motion"},
			{ID: "lens-warp", Name: "Lens Warp", Type: "cinematic"},
		},
		Audio: []ModelInfo{
			{ID: "pollinations-voice", Name: "Pollinations Voice", Type: "speech"},
			{ID: "pollinations-music", Name: "Pollinations Music", Type: "soundtrack"},
		},
	}
}

// LoadModelCatalog reads a catalog override from a YAML file.
func LoadModelCatalog(path string) (ModelCatalog, error) {
	var catalog ModelCatalog
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("read model catalog: %w", err)
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return catalog, fmt.Errorf("parse model catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return catalog, err
	}
	return catalog, nil
}

// Validate checks that every modality has at least one fully described model.
func (c ModelCatalog) Validate() error {
	groups := map[string][]ModelInfo{
		"text":  c.Text,
		"image": c.Image,
		"video": c.Video,
		"audio": c.Audio,
	}
	for modality, models := range groups {
		if len(models) == 0 {
			return fmt.Errorf("model catalog: no %s models", modality)
		}
		for _, m := range models {
			if m.ID == "" || m.Name == "" || m.Type == "" {
				return fmt.Errorf("model catalog: incomplete %s model entry %q", modality, m.ID)
			}
		}
	}
	return nil
}
