// Package export writes experiment results to tabular formats for external
// analysis tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dtalign/twinsim/internal/experiment"
)

// csvHeader fixes the column order consumed by downstream reporting tools.
var csvHeader = []string{"condition", "coef", "intercept", "rmse", "mae", "fit_time"}

// WriteCSV writes records to w as CSV with a header row, one row per
// condition in slice order.
func WriteCSV(w io.Writer, records []experiment.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Condition),
			formatFloat(rec.Coef),
			formatFloat(rec.Intercept),
			formatFloat(rec.RMSE),
			formatFloat(rec.MAE),
			formatFloat(rec.FitSeconds),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing condition %d: %w", rec.Condition, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to path, creating parent directories as needed.
func SaveCSV(path string, records []experiment.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
