package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMAE(t *testing.T) {
	assert.InDelta(t, 2.0, MAE([]float64{10, 20}, []float64{12, 18}), 1e-12)
	assert.Zero(t, MAE(nil, nil))
}

func TestRMSE(t *testing.T) {
	got := RMSE([]float64{0, 0}, []float64{3, 4})
	assert.InDelta(t, math.Sqrt(12.5), got, 1e-12)
	assert.Zero(t, RMSE(nil, []float64{1}))
}

func TestMAPE_SkipsZeroExpected(t *testing.T) {
	got := MAPE([]float64{100, 0, 200}, []float64{110, 5, 180})
	assert.InDelta(t, 10.0, got, 1e-12)
	assert.Zero(t, MAPE([]float64{0}, []float64{1}))
}

func TestMetrics_UnevenLengths(t *testing.T) {
	assert.InDelta(t, 1.0, MAE([]float64{1, 2, 3}, []float64{2}), 1e-12)
}
