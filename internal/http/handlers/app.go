package handlers

import (
	"encoding/json"
	"net/http"

	"genx-server/internal/domain"
	"genx-server/internal/infra"
	"genx-server/internal/jobs"
	"genx-server/internal/registry"
)

// App is the handler container; everything it serves is injected.
type App struct {
	Config     *infra.Config
	Logger     infra.Logger
	Registry   registry.Registry
	Dispatcher *jobs.Dispatcher
	Catalog    domain.ModelCatalog
}

func NewApp(cfg *infra.Config, logger infra.Logger, reg registry.Registry, dispatcher *jobs.Dispatcher, catalog domain.ModelCatalog) *App {
	return &App{
		Config:     cfg,
		Logger:     logger,
		Registry:   reg,
		Dispatcher: dispatcher,
		Catalog:    catalog,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
