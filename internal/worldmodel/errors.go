package worldmodel

import "errors"

// Domain errors for fitting and evaluation.
var (
	// ErrInvalidInput indicates malformed shapes or lengths passed to Fit,
	// RMSE, or MAE.
	ErrInvalidInput = errors.New("worldmodel: invalid input")

	// ErrNotFitted indicates Predict or Params was called before Fit.
	ErrNotFitted = errors.New("worldmodel: model not fitted")
)
