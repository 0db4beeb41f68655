package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"genx-server/internal/domain"
)

// JobStatus reports the real state of an accepted job, including the stored
// pipeline result once it completes.
func (a *App) JobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	job, err := a.Registry.Lookup(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Job not found")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("job lookup failed")
		a.error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"progress": job.Progress,
	}
	switch job.Status {
	case domain.JobStatusCompleted:
		resp["result"] = job.Result
	case domain.JobStatusFailed:
		resp["error"] = job.ErrorMessage
	}
	a.json(w, http.StatusOK, resp)
}
