// Package analyze runs the report engine over whole directories of
// simulation reports: discovery and grouping, parallel per-run analysis,
// cross-run aggregation, and CSV export. All heavy lifting lives in
// internal/report; this package is the batch layer around it.
package analyze

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ReportFile is one discovered report and the group it belongs to. The
// group label is the report's directory relative to the walk root; reports
// directly under the root use ".".
type ReportFile struct {
	Group string
	Path  string
}

// DiscoverReports walks root recursively and collects every .json file.
// The result is in lexical walk order, so discovery is deterministic.
func DiscoverReports(root string) ([]ReportFile, error) {
	var files []ReportFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		files = append(files, ReportFile{Group: filepath.ToSlash(rel), Path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk reports dir: %w", err)
	}
	return files, nil
}
