package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
	"github.com/Cheertaboi/refill-pricing-service/internal/pricing"
	"github.com/Cheertaboi/refill-pricing-service/internal/service"
)

// --- Request / Response DTOs ---

type BatchQuoteRequest struct {
	Items []models.QuoteRequest `json:"items"`
}

type BatchQuoteResponse struct {
	Quotes []models.Quote `json:"quotes"`
}

type PrescriptionListResponse struct {
	Prescriptions []models.Prescription `json:"prescriptions"`
}

// --- Handler struct & constructor ---

type Pricer interface {
	Quote(ctx context.Context, req models.QuoteRequest) (models.Quote, error)
	QuoteBatch(ctx context.Context, reqs []models.QuoteRequest) ([]models.Quote, error)
	QuoteByName(ctx context.Context, name string) (models.Quote, error)
	ListPrescriptions(ctx context.Context) ([]models.Prescription, error)
	SavePrescription(ctx context.Context, p models.Prescription) (int, error)
}

type PricingHandler struct {
	service Pricer
	logger  *zap.Logger
}

func NewPricingHandler(svc Pricer, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{service: svc, logger: logger}
}

// --- Helpers ---

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

// writeJSON encodes v before sending the status so an encoding failure
// becomes a 500 instead of an empty 2xx.
func (h *PricingHandler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encode response", zap.Int("status", code), zap.Error(err))
		code = http.StatusInternalServerError
		raw = []byte(`{"error":"internal_error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(raw, '\n')); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

// decodeBody reads a size-capped JSON body into v and writes the error
// response itself when it fails.
func (h *PricingHandler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "body_too_large"})
			return false
		}
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return false
	}
	return true
}

// errorCode maps domain errors to a status and a stable error code.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPrescriptionNotFound):
		return http.StatusNotFound, "prescription_not_found"
	case errors.Is(err, service.ErrMissingName):
		return http.StatusBadRequest, "prescription_required"
	case errors.Is(err, service.ErrBatchTooLarge):
		return http.StatusBadRequest, "batch_too_large"
	case errors.Is(err, pricing.ErrNegativePrice):
		return http.StatusBadRequest, "negative_price_per_refill"
	case errors.Is(err, pricing.ErrNegativeRefills):
		return http.StatusBadRequest, "negative_refills"
	case errors.Is(err, pricing.ErrNegativeCost):
		return http.StatusBadRequest, "negative_cost"
	case errors.Is(err, pricing.ErrNotANumber):
		return http.StatusBadRequest, "not_a_number"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func (h *PricingHandler) writeError(w http.ResponseWriter, err error) {
	code, msg := errorCode(err)
	body := map[string]interface{}{"error": msg}
	var batchErr *service.BatchError
	if errors.As(err, &batchErr) {
		body["index"] = batchErr.Index
	}
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, code, body)
}

// --- Handlers ---

// CreateQuote handles POST /quotes
func (h *PricingHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	q, err := h.service.Quote(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, q)
}

// CreateBatchQuote handles POST /quotes/batch
func (h *PricingHandler) CreateBatchQuote(w http.ResponseWriter, r *http.Request) {
	var req BatchQuoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	quotes, err := h.service.QuoteBatch(r.Context(), req.Items)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, BatchQuoteResponse{Quotes: quotes})
}

// QuotePrescription handles GET /prescriptions/{name}/quote
func (h *PricingHandler) QuotePrescription(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.QuoteByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, q)
}

// ListPrescriptions handles GET /prescriptions
func (h *PricingHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPrescriptions(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, PrescriptionListResponse{Prescriptions: list})
}

// SavePrescription handles POST /admin/prescriptions
func (h *PricingHandler) SavePrescription(w http.ResponseWriter, r *http.Request) {
	var p models.Prescription
	if !h.decodeBody(w, r, &p) {
		return
	}

	id, err := h.service.SavePrescription(r.Context(), p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":         "prescription_saved",
		"prescription_id": id,
	})
}
