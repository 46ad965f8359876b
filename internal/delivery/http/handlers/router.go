package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter serves health, metrics and the escrow read API. gatherer may
// be nil, in which case the default prometheus registry is exposed.
func NewRouter(escrowHandler *EscrowHandler, gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1/escrows", func(api chi.Router) {
		api.Get("/", escrowHandler.ListEscrows)
		api.Get("/stats", escrowHandler.GetEscrowStats)
		api.Get("/{escrowID}", escrowHandler.GetEscrow)
	})

	return r
}
