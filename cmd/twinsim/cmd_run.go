package main

import (
	"encoding/json"
	"fmt"

	"github.com/dtalign/twinsim/internal/experiment"
	"github.com/dtalign/twinsim/internal/export"
	"github.com/dtalign/twinsim/internal/logging"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation-and-fitting sweep",
		Long: `Generate synthetic datasets under cycling noise and complexity
conditions, fit a linear world model to each condition, and report
per-condition accuracy metrics.

Examples:
  twinsim run                              # Default 4 conditions, 100 samples
  twinsim run --conditions 8 --samples 250
  twinsim run --output results/metrics.csv # Also export CSV`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Explicit flags override config file and environment.
			if cmd.Flags().Changed("conditions") {
				cfg.Experiment.Conditions, _ = cmd.Flags().GetInt("conditions")
			}
			if cmd.Flags().Changed("samples") {
				cfg.Experiment.Samples, _ = cmd.Flags().GetInt("samples")
			}
			if cmd.Flags().Changed("output") {
				cfg.Experiment.Output, _ = cmd.Flags().GetString("output")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
			tracer := logging.NewFitTracer(".twinsim", cfg.Logging.Level)
			defer tracer.Close()

			logger.Info("starting sweep",
				"conditions", cfg.Experiment.Conditions,
				"samples", cfg.Experiment.Samples,
			)

			runner := experiment.NewRunner(logger, tracer)
			records, err := runner.Run(cmd.Context(), cfg.Experiment.Conditions, cfg.Experiment.Samples)
			if err != nil {
				return err
			}

			if jsonOut {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"conditions": cfg.Experiment.Conditions,
					"samples":    cfg.Experiment.Samples,
					"records":    records,
				}); err != nil {
					return err
				}
			} else {
				for _, rec := range records {
					fmt.Fprintf(cmd.OutOrStdout(),
						"Condition %d: RMSE=%.4f, MAE=%.4f, coef=%.3f, intercept=%.3f, fit_time=%.6fs\n",
						rec.Condition, rec.RMSE, rec.MAE, rec.Coef, rec.Intercept, rec.FitSeconds)
				}
			}

			if cfg.Experiment.Output != "" {
				if err := export.SaveCSV(cfg.Experiment.Output, records); err != nil {
					return fmt.Errorf("saving results: %w", err)
				}
				if !jsonOut {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved results to %s\n", cfg.Experiment.Output)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("conditions", 4, "Number of experimental conditions")
	cmd.Flags().Int("samples", 100, "Number of samples per condition dataset")
	cmd.Flags().String("output", "", "Optional path to save results CSV")
	return cmd
}
