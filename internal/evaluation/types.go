package evaluation

import (
	"time"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

// GoldenCase is a labeled applicant with the premium the models are expected to produce.
type GoldenCase struct {
	ID              string              `json:"id"`
	Description     string              `json:"description,omitempty"`
	Input           entities.RawRecord  `json:"input"`
	ExpectedPremium float64             `json:"expected_premium"`
	ExpectedGroup   entities.ModelGroup `json:"expected_group,omitempty"`
	// Tolerance is the allowed absolute error; 0 means the default of 1 currency unit.
	Tolerance float64 `json:"tolerance,omitempty"`
}

// EvalResult holds the evaluation outcome for a single case.
type EvalResult struct {
	CaseID        string
	Group         entities.ModelGroup
	ExpectedGroup entities.ModelGroup
	Predicted     float64
	Expected      float64
	AbsError      float64
	WithinTol     bool
	Latency       time.Duration
}

// CaseFailure records a case the estimator rejected.
type CaseFailure struct {
	CaseID string `json:"case_id"`
	Error  string `json:"error"`
}

// EvalSummary holds aggregate metrics across all golden cases.
type EvalSummary struct {
	TotalCases      int                                   `json:"total_cases"`
	Evaluated       int                                   `json:"evaluated"`
	MAE             float64                               `json:"mae"`
	RMSE            float64                               `json:"rmse"`
	MAPE            float64                               `json:"mape"`
	WithinTolerance int                                   `json:"within_tolerance"`
	GroupAccuracy   float64                               `json:"group_accuracy"`
	AvgLatency      time.Duration                         `json:"avg_latency_ns"`
	ByGroup         map[entities.ModelGroup]*GroupSummary `json:"by_group"`
	Failures        []CaseFailure                         `json:"failures,omitempty"`
}

// GroupSummary holds metrics grouped by the model group that served the case.
type GroupSummary struct {
	Count int     `json:"count"`
	MAE   float64 `json:"mae"`
	RMSE  float64 `json:"rmse"`
}
