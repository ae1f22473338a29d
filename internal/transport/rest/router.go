package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Words  *WordsHandler
}

// NewRouter builds the route table. Middleware is applied by the caller
// so that the router stays wiring-only.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Health)
	mux.HandleFunc("GET /livez", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)

	mux.HandleFunc("GET /v1/words/{word}", h.Words.Get)
	mux.HandleFunc("POST /v1/words/{word}/enrich", h.Words.Enrich)
	mux.HandleFunc("POST /v1/enrich/batch", h.Words.EnrichBatch)

	return mux
}
