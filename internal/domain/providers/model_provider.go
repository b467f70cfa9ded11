package providers

import (
	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

// PremiumModel is a loaded scaler+model pair.
type PremiumModel interface {
	// Predict scales the bundle's declared columns and runs inference on the row
	Predict(vector entities.FeatureVector) (float64, error)

	// Info describes the bundle
	Info() entities.BundleInfo
}

// ModelBundleProvider hands out the immutable bundles loaded at startup.
type ModelBundleProvider interface {
	Bundle(group entities.ModelGroup) (PremiumModel, error)
}
