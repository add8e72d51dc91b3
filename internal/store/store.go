// Package store persists analyzed run summaries so they can be listed and
// re-aggregated without re-reading the report files. Implementations:
// SQLite (SqlStore) and in-memory (MemStore, for tests).
package store

import "failsift/internal/report"

// DefaultDBPath is the default relative path for the SQLite DB
// (per-workspace). Open() creates the parent dir if needed.
const DefaultDBPath = ".failsift/failsift.db"

// Store is the persistence facade for run summaries. Saving the same
// (group, run id) again replaces the previous row, so re-running an
// analysis is idempotent.
type Store interface {
	SaveRun(s *report.RunSummary) error
	ListRuns(group string) ([]*report.RunSummary, error)
	ListGroups() ([]string, error)
	Close() error
}
