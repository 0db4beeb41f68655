package handlers

import (
	"encoding/json"
	"net/http"

	"genx-server/internal/providers/prompt"
)

type enhancePromptRequest struct {
	Prompt  string `json:"prompt"`
	Context struct {
		Emotion   *string  `json:"emotion"`
		Intensity *float64 `json:"intensity"`
		Style     *string  `json:"style"`
	} `json:"context"`
}

// EnhancePrompt serves the standalone enhancement endpoint. Context fields
// are optional and default to a neutral mid-intensity realistic treatment.
func (a *App) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	var req enhancePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	qc := prompt.QuickContext{Emotion: "neutral", Intensity: 0.5, Style: "realistic"}
	if req.Context.Emotion != nil {
		qc.Emotion = *req.Context.Emotion
	}
	if req.Context.Intensity != nil {
		qc.Intensity = *req.Context.Intensity
	}
	if req.Context.Style != nil {
		qc.Style = *req.Context.Style
	}

	a.json(w, http.StatusOK, map[string]any{
		"original":     req.Prompt,
		"enhanced":     prompt.QuickEnhance(req.Prompt, qc),
		"improvements": prompt.QuickImprovements,
	})
}
