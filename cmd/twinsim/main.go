package main

import (
	"fmt"
	"os"

	"github.com/dtalign/twinsim/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "twinsim",
		Short: "Digital-twin alignment experiment harness",
		Long: `twinsim studies how data-collection conditions affect the quality of a
fitted world model of a physical process.

It simulates feature/target observations under cycling noise and
complexity conditions, fits a closed-form linear world model to each
condition, and reports per-condition accuracy metrics.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for scripted consumption)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.twinsim/config.yaml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newQueryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration for a command: an explicit --config path
// wins, otherwise the default locations and environment are consulted.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load()
}
