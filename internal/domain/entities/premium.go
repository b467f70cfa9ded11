package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModelGroup identifies one of the age-banded model bundles.
type ModelGroup string

const (
	ModelGroupYoung ModelGroup = "young"
	ModelGroupRest  ModelGroup = "rest"
)

// PremiumEstimate is the result of one prediction.
type PremiumEstimate struct {
	ID          string             `json:"id"`
	Premium     decimal.Decimal    `json:"premium"`
	Currency    string             `json:"currency"`
	Formatted   string             `json:"formatted"`
	ModelGroup  ModelGroup         `json:"model_group"`
	RiskScore   float64            `json:"risk_score"`
	Features    map[string]float64 `json:"features"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// BundleInfo describes a loaded model bundle.
type BundleInfo struct {
	Group         ModelGroup `json:"group"`
	ModelKind     string     `json:"model_kind"`
	ModelFeatures []string   `json:"model_features"`
	ScalerKind    string     `json:"scaler_kind"`
	ScaledColumns []string   `json:"scaled_columns"`
}

// SchemaInfo describes the feature schema and model dispatch.
type SchemaInfo struct {
	Columns          []string     `json:"columns"`
	IndicatorColumns []string     `json:"indicator_columns"`
	AgeThreshold     int          `json:"age_threshold"`
	Bundles          []BundleInfo `json:"bundles"`
}
