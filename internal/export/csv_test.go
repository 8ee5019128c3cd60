package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtalign/twinsim/internal/experiment"
)

func sampleRecords() []experiment.Record {
	return []experiment.Record{
		{Condition: 0, Coef: 2.01, Intercept: 4.95, RMSE: 0.48, MAE: 0.39, FitSeconds: 0.000123},
		{Condition: 1, Coef: 1.97, Intercept: 5.1, RMSE: 1.02, MAE: 0.81, FitSeconds: 0.000098},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 records)", len(rows))
	}

	wantHeader := "condition,coef,intercept,rmse,mae,fit_time"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	if rows[1][0] != "0" || rows[2][0] != "1" {
		t.Errorf("condition column = [%s, %s], want [0, 1]", rows[1][0], rows[2][0])
	}
	if rows[1][1] != "2.01" {
		t.Errorf("coef cell = %q, want %q", rows[1][1], "2.01")
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV with no records: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want header only", len(lines))
	}
}

func TestSaveCSVCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "run1", "metrics.csv")
	if err := SaveCSV(path, sampleRecords()); err != nil {
		t.Fatalf("SaveCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "condition,coef,intercept,rmse,mae,fit_time\n") {
		t.Errorf("saved file missing expected header, got: %q", string(data))
	}
}
