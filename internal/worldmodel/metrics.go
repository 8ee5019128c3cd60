package worldmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RMSE computes the root mean squared error between equal-length, non-empty
// true and predicted value slices.
func RMSE(yTrue, yPred []float64) (float64, error) {
	if err := checkMetricInput(yTrue, yPred); err != nil {
		return 0, err
	}
	n := float64(len(yTrue))
	return floats.Distance(yTrue, yPred, 2) / math.Sqrt(n), nil
}

// MAE computes the mean absolute error between equal-length, non-empty true
// and predicted value slices.
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkMetricInput(yTrue, yPred); err != nil {
		return 0, err
	}
	n := float64(len(yTrue))
	return floats.Distance(yTrue, yPred, 1) / n, nil
}

func checkMetricInput(yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return fmt.Errorf("%w: metric input must be non-empty", ErrInvalidInput)
	}
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("%w: length mismatch, %d true vs %d predicted", ErrInvalidInput, len(yTrue), len(yPred))
	}
	return nil
}
