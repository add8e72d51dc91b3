package main

import (
	"fmt"
	"os"

	"failsift/internal/logging"
	"failsift/internal/report"
	"failsift/internal/store"
)

// noStore is the --db value that disables persistence.
const noStore = "none"

// defaultDBHint is shown in flag help.
const defaultDBHint = store.DefaultDBPath

// resolveDBPath picks the SQLite path: explicit flag, then the FAILSIFT_DB
// environment variable, then the per-workspace default.
func resolveDBPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("FAILSIFT_DB"); env != "" {
		return env
	}
	return store.DefaultDBPath
}

// persistSummaries saves every summary, unless persistence is disabled.
func persistSummaries(dbPath string, summaries []*report.RunSummary) error {
	if dbPath == noStore {
		return nil
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	for _, s := range summaries {
		if err := st.SaveRun(s); err != nil {
			return err
		}
	}
	logging.New("store").Info("summaries saved", "db", dbPath, "runs", len(summaries))
	return nil
}

// logDiagnostics reports the engine's non-fatal advisories at warn level.
func logDiagnostics(diags []report.Diagnostic) {
	logger := logging.New("analyze")
	for _, d := range diags {
		logger.Warn("statistic undefined", "run", d.RunID, "stat", d.Stat, "reason", d.Message)
	}
}
