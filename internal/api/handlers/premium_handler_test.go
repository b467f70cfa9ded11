package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthpremium/internal/api/handlers"
	"github.com/zatekoja/healthpremium/internal/domain/entities"
	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
)

type stubPremiumService struct {
	received entities.RawRecord
	err      error
}

func (s *stubPremiumService) Estimate(ctx context.Context, raw entities.RawRecord) (*entities.PremiumEstimate, error) {
	s.received = raw
	if s.err != nil {
		return nil, s.err
	}
	return &entities.PremiumEstimate{
		ID:          "est-1",
		Premium:     decimal.NewFromInt(13500),
		Currency:    "INR",
		Formatted:   "₹ 13,500",
		ModelGroup:  entities.ModelGroupRest,
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (s *stubPremiumService) Options() entities.FormOptions {
	return entities.DefaultFormOptions()
}

func (s *stubPremiumService) Schema() (*entities.SchemaInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entities.SchemaInfo{Columns: []string{"age"}, AgeThreshold: 25}, nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestPremiumHandler_Estimate_Success(t *testing.T) {
	service := &stubPremiumService{}
	handler := handlers.NewPremiumHandler(service)

	req := httptest.NewRequest("POST", "/api/premium/estimate",
		strings.NewReader(`{"Age": 30, "Insurance Plan": "Bronze", "Income in Lakhs": "10"}`))
	w := httptest.NewRecorder()

	handler.EstimatePremium(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decodeBody(t, w)
	assert.Equal(t, "₹ 13,500", body["formatted"])
	assert.Equal(t, "rest", body["model_group"])
	assert.Equal(t, json.Number("30"), service.received["Age"])
	assert.Equal(t, "Bronze", service.received["Insurance Plan"])
}

func TestPremiumHandler_Estimate_MalformedBody(t *testing.T) {
	handler := handlers.NewPremiumHandler(&stubPremiumService{})

	for _, payload := range []string{`{"Age":`, `[1,2]`, `null`, ``} {
		req := httptest.NewRequest("POST", "/api/premium/estimate", strings.NewReader(payload))
		w := httptest.NewRecorder()

		handler.EstimatePremium(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}
}

func TestPremiumHandler_Estimate_ValidationError(t *testing.T) {
	service := &stubPremiumService{err: apperrors.NewValidationError("Age is required")}
	handler := handlers.NewPremiumHandler(service)

	req := httptest.NewRequest("POST", "/api/premium/estimate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.EstimatePremium(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Age is required", decodeBody(t, w)["error"])
}

func TestPremiumHandler_Estimate_InferenceError(t *testing.T) {
	service := &stubPremiumService{
		err: apperrors.NewInferenceError("rest scaler rejected feature vector", nil),
	}
	handler := handlers.NewPremiumHandler(service)

	req := httptest.NewRequest("POST", "/api/premium/estimate", strings.NewReader(`{"Age": 40}`))
	w := httptest.NewRecorder()

	handler.EstimatePremium(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INFERENCE: rest scaler rejected feature vector", decodeBody(t, w)["error"])
}

func TestPremiumHandler_GetOptions(t *testing.T) {
	handler := handlers.NewPremiumHandler(&stubPremiumService{})

	req := httptest.NewRequest("GET", "/api/premium/options", nil)
	w := httptest.NewRecorder()

	handler.GetOptions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var opts entities.FormOptions
	require.NoError(t, json.NewDecoder(w.Body).Decode(&opts))
	assert.Contains(t, opts.Categorical[entities.FieldRegion], "Northwest")
	assert.Equal(t, 18.0, opts.Numeric[entities.FieldAge].Min)
}

func TestPremiumHandler_GetSchema_InternalErrorMasked(t *testing.T) {
	service := &stubPremiumService{err: apperrors.NewInternalError("no model bundle", nil)}
	handler := handlers.NewPremiumHandler(service)

	req := httptest.NewRequest("GET", "/api/premium/schema", nil)
	w := httptest.NewRecorder()

	handler.GetSchema(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeBody(t, w)["error"])
}
