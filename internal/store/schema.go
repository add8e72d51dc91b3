package store

// schemaVersionV1 is the current flat schema: one row per analyzed run.
const schemaVersionV1 = 1

// schemaV1 holds the flat row produced by report.Summarize. Optional
// settings are nullable; ratios and statistics are always present
// (sentinel -1 included, it is part of the output contract).
var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	id                             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_group                      TEXT NOT NULL,
	run_id                         TEXT NOT NULL,
	seed                           TEXT NOT NULL,
	repetition                     TEXT NOT NULL,

	simulate_catastrophe           INTEGER NOT NULL,
	number_of_nodes                INTEGER NOT NULL,
	duration                       REAL NOT NULL,
	gossip_delta                   REAL NOT NULL,
	failure_delta                  REAL NOT NULL,
	miss_delta                     REAL,
	push_pull                      INTEGER NOT NULL,
	pick_strategy                  INTEGER NOT NULL,
	enable_multicast               INTEGER NOT NULL,
	multicast_parameter            REAL,
	multicast_max_wait             REAL,
	expected_first_multicast       REAL,

	ratio_max_wait_and_failure     REAL NOT NULL,
	ratio_expected_first_multicast REAL NOT NULL,
	ratio_miss_delta               REAL NOT NULL,

	correct                        INTEGER NOT NULL,
	n_scheduled_crashes            INTEGER NOT NULL,
	n_expected_detected_crashes    REAL NOT NULL,
	n_correctly_detected_crashes   INTEGER NOT NULL,
	n_duplicated_reported_crashes  INTEGER NOT NULL,
	n_wrongly_reported_crashes     INTEGER NOT NULL,
	n_reappeared                   INTEGER NOT NULL,
	rate_detected_crashes          REAL NOT NULL,
	detect_time_average            REAL NOT NULL,
	detect_time_stdev              REAL NOT NULL,
	detect_time_first              REAL NOT NULL,
	detect_time_last               REAL NOT NULL,

	created_at                     TEXT NOT NULL,
	UNIQUE(run_group, run_id)
);

CREATE INDEX IF NOT EXISTS idx_runs_group ON runs(run_group);
`
