package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEnhancePromptWithContext(t *testing.T) {
	app := newTestApp(t)
	body := `{"prompt":"a quiet harbor","context":{"emotion":"calm","intensity":0.25,"style":"noir"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enhance/prompt", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.EnhancePrompt(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Original     string   `json:"original"`
		Enhanced     string   `json:"enhanced"`
		Improvements []string `json:"improvements"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Original != "a quiet harbor" {
		t.Fatalf("original = %q", resp.Original)
	}
	if !strings.Contains(resp.Enhanced, "calm emotion at 25% intensity") || !strings.Contains(resp.Enhanced, "noir style") {
		t.Fatalf("unexpected enhancement: %q", resp.Enhanced)
	}
	if len(resp.Improvements) == 0 {
		t.Fatalf("expected improvement labels")
	}
}

func TestEnhancePromptDefaults(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enhance/prompt", strings.NewReader(`{"prompt":"a harbor"}`))
	rr := httptest.NewRecorder()
	app.EnhancePrompt(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	enhanced, _ := resp["enhanced"].(string)
	if !strings.Contains(enhanced, "neutral emotion at 50% intensity") || !strings.Contains(enhanced, "realistic style") {
		t.Fatalf("defaults not applied: %q", enhanced)
	}
}

func TestEnhancePromptInvalidBody(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enhance/prompt", strings.NewReader("{bad"))
	rr := httptest.NewRecorder()
	app.EnhancePrompt(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
