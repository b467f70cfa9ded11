package evaluation

import "fmt"

// GuardrailConfig sets the pass/fail limits for an evaluation run. Zero disables a limit.
type GuardrailConfig struct {
	MaxMAE           float64
	MaxMAPE          float64
	MinGroupAccuracy float64
	MaxFailures      int
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	if config.MaxFailures < 0 {
		config.MaxFailures = 0
	}
	return &Guardrails{config: config}
}

// Check returns one message per violated limit.
func (g *Guardrails) Check(s *EvalSummary) []string {
	var violations []string
	if g.config.MaxMAE > 0 && s.MAE > g.config.MaxMAE {
		violations = append(violations, fmt.Sprintf("MAE %.2f exceeds %.2f", s.MAE, g.config.MaxMAE))
	}
	if g.config.MaxMAPE > 0 && s.MAPE > g.config.MaxMAPE {
		violations = append(violations, fmt.Sprintf("MAPE %.2f%% exceeds %.2f%%", s.MAPE, g.config.MaxMAPE))
	}
	if g.config.MinGroupAccuracy > 0 && s.GroupAccuracy < g.config.MinGroupAccuracy {
		violations = append(violations, fmt.Sprintf("group accuracy %.2f below %.2f", s.GroupAccuracy, g.config.MinGroupAccuracy))
	}
	if len(s.Failures) > g.config.MaxFailures {
		violations = append(violations, fmt.Sprintf("%d cases failed (allowed %d)", len(s.Failures), g.config.MaxFailures))
	}
	return violations
}
