package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/internal/domain/providers"
	"github.com/zatekoja/healthpremium/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
	"github.com/zatekoja/healthpremium/pkg/utils"
)

// PremiumService estimates premiums from raw form records.
type PremiumService struct {
	bundles  providers.ModelBundleProvider
	encoder  *FeatureEncoder
	selector *ModelSelector
	currency string
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewPremiumService creates a new premium service
func NewPremiumService(
	bundles providers.ModelBundleProvider,
	encoder *FeatureEncoder,
	selector *ModelSelector,
	currency string,
) *PremiumService {
	return &PremiumService{
		bundles:  bundles,
		encoder:  encoder,
		selector: selector,
		currency: currency,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetMetrics enables estimate metrics
func (s *PremiumService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// Estimate parses a raw record and predicts its premium.
func (s *PremiumService) Estimate(ctx context.Context, raw entities.RawRecord) (*entities.PremiumEstimate, error) {
	applicant, err := entities.ParseApplicant(raw)
	if err != nil {
		observability.RecordEstimateError(ctx, s.metrics, string(apperrors.TypeOf(err)))
		return nil, err
	}
	return s.EstimateApplicant(ctx, applicant)
}

// EstimateApplicant predicts the premium for a parsed applicant.
func (s *PremiumService) EstimateApplicant(ctx context.Context, applicant entities.Applicant) (*entities.PremiumEstimate, error) {
	ctx, span := observability.StartSpan(ctx, "premium.estimate")
	defer span.End()
	start := time.Now()

	vector := s.encoder.Encode(applicant)
	group := s.selector.Select(applicant.Age)
	observability.SetSpanAttributes(span,
		attribute.String("premium.model_group", string(group)),
		attribute.Int("premium.age", applicant.Age),
	)

	bundle, err := s.bundles.Bundle(group)
	if err != nil {
		observability.RecordError(span, err)
		observability.RecordEstimateError(ctx, s.metrics, string(apperrors.TypeOf(err)))
		return nil, err
	}

	prediction, err := bundle.Predict(vector)
	if err != nil {
		observability.RecordError(span, err)
		observability.RecordEstimateError(ctx, s.metrics, string(apperrors.TypeOf(err)))
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("model_group", string(group)).
			Msg("premium prediction failed")
		return nil, err
	}

	amount := decimal.NewFromFloat(prediction).Truncate(0)
	riskScore := vector.Values[entities.ColNormalizedRiskScore]

	estimate := &entities.PremiumEstimate{
		ID:          uuid.New().String(),
		Premium:     amount,
		Currency:    s.currency,
		Formatted:   utils.FormatCurrency(amount, s.currency),
		ModelGroup:  group,
		RiskScore:   riskScore,
		Features:    vector.AsMap(),
		GeneratedAt: s.now(),
	}

	observability.RecordEstimate(ctx, s.metrics, string(group), time.Since(start))
	observability.LoggerFromContext(ctx).Debug().
		Str("estimate_id", estimate.ID).
		Str("model_group", string(group)).
		Str("premium", amount.String()).
		Msg("premium estimated")

	return estimate, nil
}

// Options returns the form vocabulary.
func (s *PremiumService) Options() entities.FormOptions {
	return entities.DefaultFormOptions()
}

// Schema describes the feature columns and the loaded bundles.
func (s *PremiumService) Schema() (*entities.SchemaInfo, error) {
	info := &entities.SchemaInfo{
		Columns:          append([]string(nil), entities.FeatureColumns[:]...),
		IndicatorColumns: entities.IndicatorColumns(),
		AgeThreshold:     s.selector.Threshold(),
	}
	for _, group := range []entities.ModelGroup{entities.ModelGroupYoung, entities.ModelGroupRest} {
		bundle, err := s.bundles.Bundle(group)
		if err != nil {
			return nil, err
		}
		info.Bundles = append(info.Bundles, bundle.Info())
	}
	return info, nil
}
