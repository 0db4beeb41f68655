package handlers

import "net/http"

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	openrouter := "connected"
	if a.Config.ProviderAPIKey == "" || a.Config.ProviderAPIKey == "demo-key" {
		openrouter = "demo"
	}
	a.json(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"version": "1.0.0",
		"components": map[string]string{
			"model_fusion":  "operational",
			"openrouter":    openrouter,
			"pollinations":  "connected",
			"flux_pipeline": "ready",
		},
	})
}
