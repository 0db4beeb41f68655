package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"genx-server/internal/domain"
)

func getJobStatus(t *testing.T, app *App, jobID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID+"/status", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("job_id", jobID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	app.JobStatus(rr, req)
	return rr
}

func TestJobStatusNotFound(t *testing.T) {
	app := newTestApp(t)
	rr := getJobStatus(t, app, "no-such-job")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Job not found" {
		t.Fatalf("error = %q, want %q", resp["error"], "Job not found")
	}
}

func TestJobStatusProcessing(t *testing.T) {
	app := newTestApp(t)
	if _, err := app.Registry.Register(context.Background(), "job-1"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	rr := getJobStatus(t, app, "job-1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "processing" {
		t.Fatalf("status = %v, want processing", resp["status"])
	}
	if _, ok := resp["result"]; ok {
		t.Fatalf("processing job should not carry a result")
	}
}

func TestJobStatusCompletedCarriesRealResult(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	if _, err := app.Registry.Register(ctx, "job-1"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	result := &domain.GenerationResult{
		RequestID:      "req-abc",
		SceneID:        "scene-42",
		Status:         "completed",
		ProcessingTime: 1.25,
	}
	if err := app.Registry.Complete(ctx, "job-1", result); err != nil {
		t.Fatalf("Complete() unexpected error: %v", err)
	}

	rr := getJobStatus(t, app, "job-1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Status   string                   `json:"status"`
		Progress int                      `json:"progress"`
		Result   *domain.GenerationResult `json:"result"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "completed" || resp.Progress != 100 {
		t.Fatalf("unexpected job state: %+v", resp)
	}
	if resp.Result == nil || resp.Result.SceneID != "scene-42" || resp.Result.RequestID != "req-abc" {
		t.Fatalf("expected the stored result, got %+v", resp.Result)
	}
}

func TestJobStatusFailedCarriesMessage(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	if _, err := app.Registry.Register(ctx, "job-1"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if err := app.Registry.Fail(ctx, "job-1", "fusion: stage deadline exceeded"); err != nil {
		t.Fatalf("Fail() unexpected error: %v", err)
	}
	rr := getJobStatus(t, app, "job-1")
	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "failed" {
		t.Fatalf("status = %v, want failed", resp["status"])
	}
	if resp["error"] != "fusion: stage deadline exceeded" {
		t.Fatalf("error = %v", resp["error"])
	}
}
