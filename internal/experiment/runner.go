// Package experiment orchestrates condition sweeps: it asks the simulator
// for one dataset per condition, fits a fresh world model to each, and
// collects per-condition accuracy metrics for reporting.
package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtalign/twinsim/internal/logging"
	"github.com/dtalign/twinsim/internal/simulate"
	"github.com/dtalign/twinsim/internal/worldmodel"
)

// Record holds the fitted parameters and error metrics for one condition.
// The field set and order match what the export collaborators expect;
// records are immutable once produced.
type Record struct {
	Condition  int     `json:"condition"`
	Coef       float64 `json:"coef"`
	Intercept  float64 `json:"intercept"`
	RMSE       float64 `json:"rmse"`
	MAE        float64 `json:"mae"`
	FitSeconds float64 `json:"fit_time"`
}

// Runner executes a full simulation-and-fitting sweep.
type Runner struct {
	logger *slog.Logger
	tracer *logging.FitTracer
}

// NewRunner creates a runner that logs per-condition progress to logger and
// records structured fit events through tracer. A nil logger disables
// progress output; a nil tracer is valid and disables tracing.
func NewRunner(logger *slog.Logger, tracer *logging.FitTracer) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger, tracer: tracer}
}

// Run generates conditionCount datasets of sampleCount samples each, fits a
// world model per condition, and returns one Record per condition in index
// order. Cancellation of ctx is observed between conditions.
func (r *Runner) Run(ctx context.Context, conditionCount, sampleCount int) ([]Record, error) {
	datasets, err := simulate.GenerateExperiment(conditionCount, sampleCount)
	if err != nil {
		return nil, fmt.Errorf("generating experiment: %w", err)
	}

	records := make([]Record, 0, len(datasets))
	for i := 0; i < conditionCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("experiment canceled at condition %d: %w", i, err)
		}

		rec, err := r.runCondition(i, datasets[i])
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// runCondition fits and scores a single condition's dataset.
func (r *Runner) runCondition(index int, ds simulate.Dataset) (Record, error) {
	var model worldmodel.LinearModel

	start := time.Now()
	if err := model.Fit(ds.X, ds.Y); err != nil {
		return Record{}, fmt.Errorf("fit: %w", err)
	}
	fitSeconds := time.Since(start).Seconds()

	preds, err := model.Predict(ds.X)
	if err != nil {
		return Record{}, fmt.Errorf("predict: %w", err)
	}

	rmse, err := worldmodel.RMSE(ds.Y, preds)
	if err != nil {
		return Record{}, fmt.Errorf("rmse: %w", err)
	}
	mae, err := worldmodel.MAE(ds.Y, preds)
	if err != nil {
		return Record{}, fmt.Errorf("mae: %w", err)
	}

	params, err := model.Params()
	if err != nil {
		return Record{}, fmt.Errorf("params: %w", err)
	}

	noise, tier := simulate.ConditionFor(index)
	r.logger.Info("condition fitted",
		"condition", index,
		"noise", noise,
		"complexity", tier,
		"coef", params.Coef,
		"intercept", params.Intercept,
		"rmse", rmse,
		"mae", mae,
		"fit_seconds", fitSeconds,
	)
	r.tracer.Log(map[string]any{
		"event":       "condition_fitted",
		"condition":   index,
		"noise":       noise,
		"complexity":  tier,
		"coef":        params.Coef,
		"intercept":   params.Intercept,
		"rmse":        rmse,
		"mae":         mae,
		"fit_seconds": fitSeconds,
	})

	return Record{
		Condition:  index,
		Coef:       params.Coef,
		Intercept:  params.Intercept,
		RMSE:       rmse,
		MAE:        mae,
		FitSeconds: fitSeconds,
	}, nil
}
