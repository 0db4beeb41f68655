package handlers

import "net/http"

// FusionModels serves the model catalog grouped by modality.
func (a *App) FusionModels(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Catalog)
}
