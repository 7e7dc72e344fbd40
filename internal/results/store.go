package results

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"github.com/perfspace/dse-explorer/internal/study"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS trials (
	ordinal       INTEGER PRIMARY KEY,
	sampler_id    INTEGER NOT NULL,
	state         TEXT NOT NULL,
	label         TEXT NOT NULL,
	flag_string   TEXT NOT NULL,
	env_json      TEXT NOT NULL,
	values_json   TEXT,
	metrics_json  TEXT,
	binary        TEXT,
	reason        TEXT,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trial_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	ordinal       INTEGER NOT NULL,
	stage         TEXT NOT NULL,
	detail        TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trial_events_ordinal
ON trial_events(ordinal);
`

// #endregion schema

// #region store-struct
// Store persists finalized trials and their stage events in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region save-trial
// SaveTrial persists one finalized trial row.
func (s *Store) SaveTrial(t study.Trial) error {
	envJSON, err := json.Marshal(t.Env)
	if err != nil {
		return fmt.Errorf("marshal env: %w", err)
	}
	metricsJSON, err := json.Marshal(t.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	var valuesJSON interface{}
	if t.Values != nil {
		data, err := json.Marshal(t.Values)
		if err != nil {
			return fmt.Errorf("marshal values: %w", err)
		}
		valuesJSON = string(data)
	}

	_, err = s.db.Exec(
		`INSERT INTO trials
		 (ordinal, sampler_id, state, label, flag_string, env_json,
		  values_json, metrics_json, binary, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Ordinal, t.SamplerID, string(t.State), t.Label, t.FlagString,
		string(envJSON), valuesJSON, string(metricsJSON), t.Binary, t.Reason,
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert trial: %w", err)
	}
	return nil
}

// #endregion save-trial

// #region events
// LogEvent records one stage transition for a trial. Failures are logged and
// swallowed: provenance must never break the run.
func (s *Store) LogEvent(ordinal int, stage, detail string) {
	_, err := s.db.Exec(
		`INSERT INTO trial_events (ordinal, stage, detail, created_at)
		 VALUES (?, ?, ?, ?)`,
		ordinal, stage, detail, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		log.Printf("[results] failed to log event for trial #%d: %v", ordinal, err)
	}
}

// Event is one recorded stage transition.
type Event struct {
	Ordinal   int
	Stage     string
	Detail    string
	CreatedAt time.Time
}

// ListEvents returns a trial's stage transitions in insertion order.
func (s *Store) ListEvents(ordinal int) ([]Event, error) {
	rows, err := s.db.Query(
		`SELECT ordinal, stage, detail, created_at
		 FROM trial_events WHERE ordinal = ? ORDER BY id`, ordinal,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&e.Ordinal, &e.Stage, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if detail.Valid {
			e.Detail = detail.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, e)
	}
	return events, rows.Err()
}

// #endregion events

// #region list-trials
// ListTrials returns saved trials ordered by ordinal.
func (s *Store) ListTrials(limit int) ([]study.Trial, error) {
	rows, err := s.db.Query(
		`SELECT ordinal, sampler_id, state, label, flag_string, env_json,
		        values_json, metrics_json, binary, reason, created_at
		 FROM trials ORDER BY ordinal LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list trials: %w", err)
	}
	defer rows.Close()

	var trials []study.Trial
	for rows.Next() {
		t, err := scanTrial(rows)
		if err != nil {
			return nil, err
		}
		trials = append(trials, t)
	}
	return trials, rows.Err()
}

// GetTrial retrieves one trial by ordinal.
func (s *Store) GetTrial(ordinal int) (study.Trial, error) {
	rows, err := s.db.Query(
		`SELECT ordinal, sampler_id, state, label, flag_string, env_json,
		        values_json, metrics_json, binary, reason, created_at
		 FROM trials WHERE ordinal = ?`, ordinal,
	)
	if err != nil {
		return study.Trial{}, fmt.Errorf("get trial %d: %w", ordinal, err)
	}
	defer rows.Close()
	if !rows.Next() {
		return study.Trial{}, fmt.Errorf("trial %d not found", ordinal)
	}
	return scanTrial(rows)
}

func scanTrial(rows *sql.Rows) (study.Trial, error) {
	var t study.Trial
	var state, envJSON, createdStr string
	var valuesJSON, metricsJSON, binary, reason sql.NullString

	err := rows.Scan(&t.Ordinal, &t.SamplerID, &state, &t.Label, &t.FlagString,
		&envJSON, &valuesJSON, &metricsJSON, &binary, &reason, &createdStr)
	if err != nil {
		return study.Trial{}, fmt.Errorf("scan trial: %w", err)
	}

	t.State = study.TrialState(state)
	if err := json.Unmarshal([]byte(envJSON), &t.Env); err != nil {
		return study.Trial{}, fmt.Errorf("unmarshal env: %w", err)
	}
	if valuesJSON.Valid {
		if err := json.Unmarshal([]byte(valuesJSON.String), &t.Values); err != nil {
			return study.Trial{}, fmt.Errorf("unmarshal values: %w", err)
		}
	}
	if metricsJSON.Valid {
		if err := json.Unmarshal([]byte(metricsJSON.String), &t.Metrics); err != nil {
			return study.Trial{}, fmt.Errorf("unmarshal metrics: %w", err)
		}
	}
	if binary.Valid {
		t.Binary = binary.String
	}
	if reason.Valid {
		t.Reason = reason.String
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return t, nil
}

// #endregion list-trials
