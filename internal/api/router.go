package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Cheertaboi/refill-pricing-service/internal/api/handlers"
	"github.com/Cheertaboi/refill-pricing-service/internal/api/middleware"
)

// NewRouter builds the HTTP router for the pricing service
func NewRouter(svc handlers.Pricer, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	h := handlers.NewPricingHandler(svc, logger)

	r.Route("/quotes", func(r chi.Router) {
		r.Post("/", h.CreateQuote)
		r.Post("/batch", h.CreateBatchQuote)
	})

	r.Route("/prescriptions", func(r chi.Router) {
		r.Get("/", h.ListPrescriptions)
		r.Get("/{name}/quote", h.QuotePrescription)
	})

	// Admin endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Post("/prescriptions", h.SavePrescription)
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
