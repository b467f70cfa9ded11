package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/internal/infrastructure/observability"
)

const maxEstimateBodyBytes = 64 << 10

// PremiumEstimator is the service surface the premium handler needs.
type PremiumEstimator interface {
	Estimate(ctx context.Context, raw entities.RawRecord) (*entities.PremiumEstimate, error)
	Options() entities.FormOptions
	Schema() (*entities.SchemaInfo, error)
}

// PremiumHandler handles premium estimation HTTP requests
type PremiumHandler struct {
	service PremiumEstimator
}

// NewPremiumHandler creates a new premium handler
func NewPremiumHandler(service PremiumEstimator) *PremiumHandler {
	return &PremiumHandler{service: service}
}

// EstimatePremium handles POST /api/premium/estimate
func (h *PremiumHandler) EstimatePremium(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEstimateBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var raw entities.RawRecord
	if err := decoder.Decode(&raw); err != nil {
		respondWithError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	if raw == nil {
		respondWithError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	estimate, err := h.service.Estimate(r.Context(), raw)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Info().
			Err(err).
			Msg("premium estimate rejected")
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, estimate)
}

// GetOptions handles GET /api/premium/options
func (h *PremiumHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Options())
}

// GetSchema handles GET /api/premium/schema
func (h *PremiumHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := h.service.Schema()
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, schema)
}
