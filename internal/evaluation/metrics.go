package evaluation

import "math"

// MAE is the mean absolute error between expected and predicted. Returns 0 for empty input.
func MAE(expected, predicted []float64) float64 {
	n := pairs(expected, predicted)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(predicted[i] - expected[i])
	}
	return sum / float64(n)
}

// RMSE is the root mean squared error. Returns 0 for empty input.
func RMSE(expected, predicted []float64) float64 {
	n := pairs(expected, predicted)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := predicted[i] - expected[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// MAPE is the mean absolute percentage error in percent. Cases with an
// expected value of 0 are skipped; returns 0 when nothing is left.
func MAPE(expected, predicted []float64) float64 {
	n := pairs(expected, predicted)
	sum, counted := 0.0, 0
	for i := 0; i < n; i++ {
		if expected[i] == 0 {
			continue
		}
		sum += math.Abs((predicted[i] - expected[i]) / expected[i])
		counted++
	}
	if counted == 0 {
		return 0
	}
	return 100 * sum / float64(counted)
}

func pairs(expected, predicted []float64) int {
	return min(len(expected), len(predicted))
}
