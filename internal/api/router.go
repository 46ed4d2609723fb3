package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter constructs the router with all API endpoints registered.
// Unmatched routes fall through to chi's default 404.
func NewRouter(svc WalletService) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/account/{accountID}/balance", h.GetBalanceHandler)
	r.Post("/account/{accountID}/transfer", h.TransferHandler)
	r.Post("/account/{accountID}/wager", h.WagerHandler)
	r.Get("/account/{accountID}/history", h.HistoryHandler)
	r.Get("/account/{accountID}/rounds", h.RoundsHandler)

	return r
}
