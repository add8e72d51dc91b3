package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"failsift/internal/report"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// boolInt maps a bool onto the 0/1 INTEGER convention used by the schema.
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullable converts an optional setting to its driver value.
func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// optFloat converts a scanned nullable column back to an optional setting.
func optFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .failsift) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.db.Exec(schemaV1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersionV1); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		v = schemaVersionV1
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", v); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}
	if v != schemaVersionV1 {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error { return s.db.Close() }

// SaveRun upserts one summary row, keyed by (group, run id).
func (s *SqlStore) SaveRun(sum *report.RunSummary) error {
	if sum == nil {
		return errors.New("summary is nil")
	}
	set := sum.Settings
	st := sum.Statistics
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO runs(
			run_group, run_id, seed, repetition,
			simulate_catastrophe, number_of_nodes, duration,
			gossip_delta, failure_delta, miss_delta,
			push_pull, pick_strategy,
			enable_multicast, multicast_parameter, multicast_max_wait,
			expected_first_multicast,
			ratio_max_wait_and_failure, ratio_expected_first_multicast, ratio_miss_delta,
			correct, n_scheduled_crashes,
			n_expected_detected_crashes, n_correctly_detected_crashes,
			n_duplicated_reported_crashes, n_wrongly_reported_crashes, n_reappeared,
			rate_detected_crashes,
			detect_time_average, detect_time_stdev, detect_time_first, detect_time_last,
			created_at
		) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		sum.Identity.Group, sum.Identity.ID, sum.Identity.Seed, sum.Identity.Repetition,
		boolInt(set.SimulateCatastrophe), set.NumberOfNodes, set.Duration,
		set.GossipDelta, set.FailureDelta, nullable(set.MissDelta),
		boolInt(set.PushPull), set.PickStrategy,
		boolInt(set.EnableMulticast), nullable(set.MulticastParameter), nullable(set.MulticastMaxWait),
		nullable(set.ExpectedFirstMulticast),
		sum.Ratios.MaxWaitOverFailure, sum.Ratios.FirstMulticastOverFailure, sum.Ratios.MissDeltaOverFailure,
		boolInt(st.Correct), st.NScheduled,
		st.NExpectedDetected, st.NCorrectlyDetected,
		st.NDuplicated, st.NWrong, st.NReappeared,
		st.RateDetected,
		st.DetectTimeMean, st.DetectTimeStdev, st.DetectTimeFirst, st.DetectTimeLast,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("save run %s/%s: %w", sum.Identity.Group, sum.Identity.ID, err)
	}
	return nil
}

// ListRuns returns all saved summaries, oldest row id first. An empty group
// matches everything.
func (s *SqlStore) ListRuns(group string) ([]*report.RunSummary, error) {
	query := `SELECT
			run_group, run_id, seed, repetition,
			simulate_catastrophe, number_of_nodes, duration,
			gossip_delta, failure_delta, miss_delta,
			push_pull, pick_strategy,
			enable_multicast, multicast_parameter, multicast_max_wait,
			expected_first_multicast,
			ratio_max_wait_and_failure, ratio_expected_first_multicast, ratio_miss_delta,
			correct, n_scheduled_crashes,
			n_expected_detected_crashes, n_correctly_detected_crashes,
			n_duplicated_reported_crashes, n_wrongly_reported_crashes, n_reappeared,
			rate_detected_crashes,
			detect_time_average, detect_time_stdev, detect_time_first, detect_time_last
		FROM runs`
	args := []any{}
	if group != "" {
		query += " WHERE run_group = ?"
		args = append(args, group)
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var list []*report.RunSummary
	for rows.Next() {
		var (
			sum                         report.RunSummary
			catastrophe, pushPull       int
			enableMulticast, correct    int
			missDelta, mcParam, mcWait  sql.NullFloat64
			expectedFirstMulticast      sql.NullFloat64
		)
		err := rows.Scan(
			&sum.Identity.Group, &sum.Identity.ID, &sum.Identity.Seed, &sum.Identity.Repetition,
			&catastrophe, &sum.Settings.NumberOfNodes, &sum.Settings.Duration,
			&sum.Settings.GossipDelta, &sum.Settings.FailureDelta, &missDelta,
			&pushPull, &sum.Settings.PickStrategy,
			&enableMulticast, &mcParam, &mcWait,
			&expectedFirstMulticast,
			&sum.Ratios.MaxWaitOverFailure, &sum.Ratios.FirstMulticastOverFailure, &sum.Ratios.MissDeltaOverFailure,
			&correct, &sum.Statistics.NScheduled,
			&sum.Statistics.NExpectedDetected, &sum.Statistics.NCorrectlyDetected,
			&sum.Statistics.NDuplicated, &sum.Statistics.NWrong, &sum.Statistics.NReappeared,
			&sum.Statistics.RateDetected,
			&sum.Statistics.DetectTimeMean, &sum.Statistics.DetectTimeStdev,
			&sum.Statistics.DetectTimeFirst, &sum.Statistics.DetectTimeLast,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		sum.Settings.SimulateCatastrophe = catastrophe == 1
		sum.Settings.PushPull = pushPull == 1
		sum.Settings.EnableMulticast = enableMulticast == 1
		sum.Statistics.Correct = correct == 1
		sum.Settings.MissDelta = optFloat(missDelta)
		sum.Settings.MulticastParameter = optFloat(mcParam)
		sum.Settings.MulticastMaxWait = optFloat(mcWait)
		sum.Settings.ExpectedFirstMulticast = optFloat(expectedFirstMulticast)
		list = append(list, &sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return list, nil
}

// ListGroups returns the distinct group labels, sorted.
func (s *SqlStore) ListGroups() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT run_group FROM runs ORDER BY run_group")
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()
	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Verify compile-time interface compliance.
var _ Store = (*SqlStore)(nil)
