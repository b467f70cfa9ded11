package evaluation

import (
	"context"
	"math"
	"time"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

const defaultTolerance = 1.0

// Estimator produces a premium estimate from a raw record.
type Estimator interface {
	Estimate(ctx context.Context, raw entities.RawRecord) (*entities.PremiumEstimate, error)
}

// Runner runs evaluation across a set of golden cases.
type Runner struct {
	estimator Estimator
}

func NewRunner(estimator Estimator) *Runner {
	return &Runner{estimator: estimator}
}

// Run estimates every case. Rejected cases are recorded as failures and
// excluded from the error metrics.
func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*EvalSummary, error) {
	summary := &EvalSummary{
		TotalCases: len(cases),
		ByGroup:    make(map[entities.ModelGroup]*GroupSummary),
	}

	var expected, predicted []float64
	groupErrs := make(map[entities.ModelGroup][][2]float64)
	labeled, routedRight := 0, 0

	for _, gc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		estimate, err := r.estimator.Estimate(ctx, gc.Input)
		latency := time.Since(start)
		if err != nil {
			summary.Failures = append(summary.Failures, CaseFailure{CaseID: gc.ID, Error: err.Error()})
			continue
		}

		res := newResult(gc, estimate, latency)
		summary.Evaluated++
		summary.AvgLatency += res.Latency
		if res.WithinTol {
			summary.WithinTolerance++
		}
		if gc.ExpectedGroup != "" {
			labeled++
			if res.Group == gc.ExpectedGroup {
				routedRight++
			}
		}

		expected = append(expected, res.Expected)
		predicted = append(predicted, res.Predicted)
		groupErrs[res.Group] = append(groupErrs[res.Group], [2]float64{res.Expected, res.Predicted})
	}

	summary.MAE = MAE(expected, predicted)
	summary.RMSE = RMSE(expected, predicted)
	summary.MAPE = MAPE(expected, predicted)
	if summary.Evaluated > 0 {
		summary.AvgLatency /= time.Duration(summary.Evaluated)
	}
	if labeled > 0 {
		summary.GroupAccuracy = float64(routedRight) / float64(labeled)
	}

	for group, rows := range groupErrs {
		exp := make([]float64, len(rows))
		pred := make([]float64, len(rows))
		for i, row := range rows {
			exp[i], pred[i] = row[0], row[1]
		}
		summary.ByGroup[group] = &GroupSummary{
			Count: len(rows),
			MAE:   MAE(exp, pred),
			RMSE:  RMSE(exp, pred),
		}
	}

	return summary, nil
}

func newResult(gc GoldenCase, estimate *entities.PremiumEstimate, latency time.Duration) EvalResult {
	tolerance := gc.Tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}
	predicted := estimate.Premium.InexactFloat64()
	absErr := math.Abs(predicted - gc.ExpectedPremium)

	return EvalResult{
		CaseID:        gc.ID,
		Group:         estimate.ModelGroup,
		ExpectedGroup: gc.ExpectedGroup,
		Predicted:     predicted,
		Expected:      gc.ExpectedPremium,
		AbsError:      absErr,
		WithinTol:     absErr <= tolerance,
		Latency:       latency,
	}
}
