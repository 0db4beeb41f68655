package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"genx-server/internal/http/handlers"
	"genx-server/internal/middleware"
)

// NewRouter wires the HTTP surface around the handler container.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.CORSAllowedOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/health", app.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate/multimodal", app.GenerateMultimodal)
		r.Get("/jobs/{job_id}/status", app.JobStatus)
		r.Post("/enhance/prompt", app.EnhancePrompt)
		r.Get("/fusion/models", app.FusionModels)
	})

	return r
}
