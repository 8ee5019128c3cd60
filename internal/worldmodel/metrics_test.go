package worldmodel

import (
	"errors"
	"math"
	"testing"
)

func TestMetricsIdentity(t *testing.T) {
	y := []float64{1.5, -2.0, 0, 42.42, 7}

	rmse, err := RMSE(y, y)
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if rmse != 0 {
		t.Errorf("RMSE(y, y) = %g, want 0", rmse)
	}

	mae, err := MAE(y, y)
	if err != nil {
		t.Fatalf("MAE: %v", err)
	}
	if mae != 0 {
		t.Errorf("MAE(y, y) = %g, want 0", mae)
	}
}

func TestMetricsKnownValues(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{2, 2, 2, 2}
	// errors: -1, 0, 1, 2 -> mse = 6/4, mae = 4/4

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if want := math.Sqrt(1.5); math.Abs(rmse-want) > 1e-12 {
		t.Errorf("RMSE = %g, want %g", rmse, want)
	}

	mae, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE: %v", err)
	}
	if math.Abs(mae-1.0) > 1e-12 {
		t.Errorf("MAE = %g, want 1.0", mae)
	}
}

func TestMetricsNonNegative(t *testing.T) {
	yTrue := []float64{-5, 3.2, 0.1, 9, -0.4}
	yPred := []float64{2.2, -8, 4, 4, 100}

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if rmse < 0 {
		t.Errorf("RMSE = %g, want non-negative", rmse)
	}

	mae, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE: %v", err)
	}
	if mae < 0 {
		t.Errorf("MAE = %g, want non-negative", mae)
	}
	if rmse < mae {
		t.Errorf("RMSE (%g) should never be below MAE (%g)", rmse, mae)
	}
}

func TestMetricsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
	}{
		{name: "both empty", yTrue: nil, yPred: nil},
		{name: "empty true", yTrue: nil, yPred: []float64{1}},
		{name: "length mismatch", yTrue: []float64{1, 2}, yPred: []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RMSE(tt.yTrue, tt.yPred); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("RMSE error = %v, want ErrInvalidInput", err)
			}
			if _, err := MAE(tt.yTrue, tt.yPred); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("MAE error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
