package analyze

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"failsift/internal/report"
)

// WriteCSV writes the flat rows of all summaries, header first, using the
// stable column set from the report package.
func WriteCSV(w io.Writer, summaries []*report.RunSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(report.Columns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range summaries {
		if err := cw.Write(s.Row()); err != nil {
			return fmt.Errorf("write csv row %s: %w", s.Identity.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes results.csv-style output to path, creating the parent
// directory if needed.
func WriteCSVFile(path string, summaries []*report.RunSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	if err := WriteCSV(f, summaries); err != nil {
		return err
	}
	return f.Close()
}
