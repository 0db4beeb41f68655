package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"genx-server/internal/domain"
)

// requiredGenerationFields are checked in this order; the first missing one
// is named in the 400 response.
var requiredGenerationFields = []string{
	"scene_id",
	"text_prompt",
	"emotion",
	"intensity",
	"style",
	"camera_angle",
	"models",
}

// GenerateMultimodal accepts a scene request, registers a job, and hands it
// to the dispatcher. The response acknowledges acceptance; the pipeline
// outcome is retrieved through the job status endpoint.
func (a *App) GenerateMultimodal(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, field := range requiredGenerationFields {
		if _, ok := fields[field]; !ok {
			a.error(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	var req domain.GenerationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	jobID := uuid.NewString()
	if _, err := a.Registry.Register(r.Context(), jobID); err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("failed to register job")
		a.error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := a.Dispatcher.Enqueue(jobID, req); err != nil {
		if ferr := a.Registry.Fail(r.Context(), jobID, err.Error()); ferr != nil {
			a.Logger.Error().Err(ferr).Str("job_id", jobID).Msg("failed to record enqueue failure")
		}
		if errors.Is(err, domain.ErrQueueFull) {
			a.error(w, http.StatusServiceUnavailable, "generation queue is full")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("failed to enqueue job")
		a.error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.json(w, http.StatusAccepted, map[string]any{
		"job_id":         jobID,
		"status":         "processing",
		"estimated_time": a.Config.EstimatedTime,
		"progress_url":   fmt.Sprintf("/api/v1/jobs/%s/status", jobID),
	})
}
