package artifacts

import (
	"fmt"
	"math"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/internal/domain/providers"
	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
)

// Bundle pairs a fitted scaler with the model trained on its output.
// It is immutable after construction and safe for concurrent use.
type Bundle struct {
	group  entities.ModelGroup
	scaler *Scaler
	model  Regressor
}

// NewBundle creates a bundle for an age group.
func NewBundle(group entities.ModelGroup, scaler *Scaler, model Regressor) *Bundle {
	return &Bundle{group: group, scaler: scaler, model: model}
}

// Predict scales the declared columns of v, then runs the model on the full row.
// Any column mismatch is returned as an INFERENCE error.
func (b *Bundle) Predict(v entities.FeatureVector) (float64, error) {
	scaled, err := b.scaler.Transform(v)
	if err != nil {
		return 0, apperrors.NewInferenceError(fmt.Sprintf("%s scaler rejected feature vector", b.group), err)
	}

	if err := matchColumns(b.model.FeatureNames(), scaled.Columns); err != nil {
		return 0, apperrors.NewInferenceError(fmt.Sprintf("%s model rejected feature vector", b.group), err)
	}

	y := b.model.Predict(scaled.Values)
	if math.IsInf(y, 0) || math.IsNaN(y) {
		return 0, apperrors.NewInferenceError(fmt.Sprintf("%s model produced a non-finite prediction", b.group), nil)
	}
	return y, nil
}

// Info describes the bundle.
func (b *Bundle) Info() entities.BundleInfo {
	return entities.BundleInfo{
		Group:         b.group,
		ModelKind:     b.model.Kind(),
		ModelFeatures: b.model.FeatureNames(),
		ScalerKind:    b.scaler.Kind(),
		ScaledColumns: b.scaler.Columns(),
	}
}

// CheckSchema reports whether the bundle accepts rows with the given columns
// without running a prediction.
func (b *Bundle) CheckSchema(columns []string) error {
	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c] = struct{}{}
	}
	for _, c := range b.scaler.Columns() {
		if _, ok := have[c]; !ok {
			return fmt.Errorf("%s scaler column %q is not in the schema", b.group, c)
		}
	}
	if err := matchColumns(b.model.FeatureNames(), columns); err != nil {
		return fmt.Errorf("%s model: %w", b.group, err)
	}
	return nil
}

func matchColumns(want, got []string) error {
	if len(want) != len(got) {
		return fmt.Errorf("feature count mismatch: model expects %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("feature name mismatch at position %d: model expects %q, got %q", i, want[i], got[i])
		}
	}
	return nil
}

// BundleSet holds the young and rest bundles for the process lifetime.
type BundleSet struct {
	young *Bundle
	rest  *Bundle
}

// NewBundleSet creates a bundle set. Both bundles are required.
func NewBundleSet(young, rest *Bundle) *BundleSet {
	return &BundleSet{young: young, rest: rest}
}

// Bundle implements providers.ModelBundleProvider.
func (s *BundleSet) Bundle(group entities.ModelGroup) (providers.PremiumModel, error) {
	switch group {
	case entities.ModelGroupYoung:
		return s.young, nil
	case entities.ModelGroupRest:
		return s.rest, nil
	default:
		return nil, apperrors.NewInternalError(fmt.Sprintf("no model bundle for group %q", group), nil)
	}
}

// CheckSchema runs Bundle.CheckSchema on both bundles.
func (s *BundleSet) CheckSchema(columns []string) []error {
	var errs []error
	for _, b := range []*Bundle{s.young, s.rest} {
		if err := b.CheckSchema(columns); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
