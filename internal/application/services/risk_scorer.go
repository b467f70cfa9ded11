package services

import (
	"strings"

	"github.com/zatekoja/healthpremium/pkg/utils"
)

const (
	conditionSeparator = "&"
	minRiskScore       = 0
	maxRiskScore       = 14
)

// conditionWeights are per-condition severities. Unknown conditions weigh 0.
var conditionWeights = map[string]int{
	"diabetes":            6,
	"heart disease":       8,
	"high blood pressure": 6,
	"thyroid":             5,
	"no disease":          0,
	"none":                0,
}

// RiskScorer turns a medical history label into a normalized risk score.
type RiskScorer struct {
	weights map[string]int
}

// NewRiskScorer creates a risk scorer with the trained severity table.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{weights: conditionWeights}
}

// Conditions splits a compound history such as "Diabetes & Thyroid" into
// normalized condition names.
func (s *RiskScorer) Conditions(history string) []string {
	parts := strings.Split(history, conditionSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := utils.NormalizeLabel(p); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// RawScore is the summed severity of all known conditions.
func (s *RiskScorer) RawScore(history string) int {
	total := 0
	for _, c := range s.Conditions(history) {
		total += s.weights[c]
	}
	return total
}

// Score returns the raw score normalized by the highest score in the
// training data, (total - 0) / (14 - 0). Any pair of known conditions lands in [0, 1].
func (s *RiskScorer) Score(history string) float64 {
	return float64(s.RawScore(history)-minRiskScore) / float64(maxRiskScore-minRiskScore)
}
