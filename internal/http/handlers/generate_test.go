package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genx-server/internal/domain"
)

func validGenerationPayload() map[string]any {
	return map[string]any{
		"scene_id":     "scene-001",
		"text_prompt":  "A young boy running through a wheat field",
		"emotion":      "joyful",
		"intensity":    0.8,
		"style":        "cinematic",
		"camera_angle": "tracking",
		"models":       map[string]string{"text": "claude-3-haiku", "image": "flux", "video": "seedance"},
	}
}

func postGenerate(t *testing.T, app *App, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/multimodal", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	app.GenerateMultimodal(rr, req)
	return rr
}

func TestGenerateMultimodalMissingField(t *testing.T) {
	app := newTestApp(t)
	for _, field := range []string{"scene_id", "text_prompt", "emotion", "intensity", "style", "camera_angle", "models"} {
		payload := validGenerationPayload()
		delete(payload, field)
		rr := postGenerate(t, app, payload)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("omitting %s: status = %d, want 400", field, rr.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		want := "Missing required field: " + field
		if resp["error"] != want {
			t.Fatalf("omitting %s: error = %q, want %q", field, resp["error"], want)
		}
	}
}

func TestGenerateMultimodalInvalidBody(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/multimodal", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	app.GenerateMultimodal(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestGenerateMultimodalAccepted(t *testing.T) {
	app := newTestApp(t)
	rr := postGenerate(t, app, validGenerationPayload())
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		JobID         string `json:"job_id"`
		Status        string `json:"status"`
		EstimatedTime int    `json:"estimated_time"`
		ProgressURL   string `json:"progress_url"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JobID == "" {
		t.Fatalf("expected job_id in response")
	}
	if resp.Status != "processing" {
		t.Fatalf("status = %q, want processing", resp.Status)
	}
	if resp.EstimatedTime != 30 {
		t.Fatalf("estimated_time = %d, want 30", resp.EstimatedTime)
	}
	if resp.ProgressURL != "/api/v1/jobs/"+resp.JobID+"/status" {
		t.Fatalf("progress_url = %q", resp.ProgressURL)
	}

	job := waitForJob(t, app, resp.JobID)
	if job.Status != domain.JobStatusCompleted {
		t.Fatalf("job status = %q, want completed (%s)", job.Status, job.ErrorMessage)
	}
	if job.Result == nil || job.Result.SceneID != "scene-001" {
		t.Fatalf("expected stored result for scene-001, got %+v", job.Result)
	}
}

func TestGenerateMultimodalQueueFull(t *testing.T) {
	// Dispatcher never started: the single queue slot fills and the next
	// request is turned away.
	app := newTestApp(t)
	appFull := *app
	appFull.Dispatcher = newIdleDispatcher(t, app)

	if rr := postGenerate(t, &appFull, validGenerationPayload()); rr.Code != http.StatusAccepted {
		t.Fatalf("first request: status = %d, want 202", rr.Code)
	}
	rr := postGenerate(t, &appFull, validGenerationPayload())
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("second request: status = %d, want 503", rr.Code)
	}
}
