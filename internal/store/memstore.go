package store

import (
	"sort"
	"sync"

	"failsift/internal/report"
)

// MemStore keeps summaries in memory. Used by tests and by the CLI when
// persistence is disabled.
type MemStore struct {
	mu   sync.Mutex
	runs []*report.RunSummary
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

// SaveRun appends or replaces the summary keyed by (group, run id).
func (m *MemStore) SaveRun(s *report.RunSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, have := range m.runs {
		if have.Identity.Group == s.Identity.Group && have.Identity.ID == s.Identity.ID {
			m.runs[i] = s
			return nil
		}
	}
	m.runs = append(m.runs, s)
	return nil
}

// ListRuns returns saved summaries in insertion order. An empty group
// matches everything.
func (m *MemStore) ListRuns(group string) ([]*report.RunSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*report.RunSummary
	for _, s := range m.runs {
		if group == "" || s.Identity.Group == group {
			list = append(list, s)
		}
	}
	return list, nil
}

// ListGroups returns the distinct group labels, sorted.
func (m *MemStore) ListGroups() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	var groups []string
	for _, s := range m.runs {
		if !seen[s.Identity.Group] {
			seen[s.Identity.Group] = true
			groups = append(groups, s.Identity.Group)
		}
	}
	sort.Strings(groups)
	return groups, nil
}

// Close is a no-op.
func (m *MemStore) Close() error { return nil }

var _ Store = (*MemStore)(nil)
