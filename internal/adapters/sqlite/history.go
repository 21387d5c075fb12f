package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"pdsutils/internal/domain"
	"pdsutils/internal/ports"
)

const schemaVersion = "1"

// History implements ports.ScanHistory using SQLite
type History struct {
	db     *sql.DB
	dbPath string
}

// Ensure History implements ScanHistory
var _ ports.ScanHistory = (*History)(nil)

// NewHistory creates a new SQLite scan history
func NewHistory() *History {
	return &History{}
}

// Open creates or opens the history database at dbPath
func (h *History) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	h.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	h.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			root TEXT NOT NULL,
			cases TEXT NOT NULL,
			realizations TEXT NOT NULL,
			chain TEXT NOT NULL,
			axes TEXT NOT NULL,
			start_time REAL NOT NULL,
			sample_interval REAL NOT NULL,
			created_at INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS axis_stats (
			run_id TEXT NOT NULL,
			axis TEXT NOT NULL,
			max_value REAL NOT NULL,
			at_time REAL NOT NULL,
			idx INTEGER NOT NULL,
			pair INTEGER NOT NULL,
			which TEXT NOT NULL,
			found INTEGER NOT NULL,
			PRIMARY KEY (run_id, axis)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (h *History) Path() string {
	return h.dbPath
}

// Save records run and its per-axis results in one transaction. An empty
// ID is replaced by a new UUID and a zero CreatedAt by the current time.
func (h *History) Save(run *domain.ScanRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := h.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.insertRun(run); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	if run.Stats != nil {
		for _, axis := range run.Stats.Axes {
			st, _ := run.Stats.Get(axis)
			if err := tx.insertAxisStat(run.ID, axis, st); err != nil {
				return fmt.Errorf("failed to save %s result of run %s: %w", axis, run.ID, err)
			}
		}
	}

	return tx.Commit()
}

// List returns the most recent runs first. A limit of zero or less returns every run.
func (h *History) List(limit int) ([]domain.RunSummary, error) {
	query := `SELECT id, root, cases, realizations, chain, created_at FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.RunSummary
	for rows.Next() {
		var (
			s                   domain.RunSummary
			cases, reals, chain string
			createdAt           int64
			caseNums, realNums  []int
			bodies              []string
		)
		if err := rows.Scan(&s.ID, &s.Root, &cases, &reals, &chain, &createdAt); err != nil {
			return nil, err
		}
		if err := decodeColumns(
			column{cases, &caseNums}, column{reals, &realNums}, column{chain, &bodies},
		); err != nil {
			return nil, fmt.Errorf("corrupt run %s: %w", s.ID, err)
		}
		s.Cases = len(caseNums)
		s.Reals = len(realNums)
		s.Bodies = len(bodies)
		s.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, s)
	}

	return runs, rows.Err()
}

// Get loads a run with its per-axis results
func (h *History) Get(id string) (*domain.ScanRun, error) {
	var (
		run                       domain.ScanRun
		cases, reals, chain, axes string
		createdAt, durationNs     int64
		axisNames                 []string
	)

	err := h.db.QueryRow(`
		SELECT id, root, cases, realizations, chain, axes, start_time, sample_interval, created_at, duration_ns
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Params.Root, &cases, &reals, &chain, &axes,
		&run.Params.StartTime, &run.Params.SampleInterval, &createdAt, &durationNs)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = decodeColumns(
		column{cases, &run.Params.Cases},
		column{reals, &run.Params.Realizations},
		column{chain, &run.Params.Chain},
		column{axes, &axisNames},
	)
	if err != nil {
		return nil, fmt.Errorf("corrupt run %s: %w", id, err)
	}
	for _, name := range axisNames {
		run.Params.Axes = append(run.Params.Axes, domain.Axis(name))
	}
	run.CreatedAt = time.Unix(0, createdAt)
	run.Duration = time.Duration(durationNs)
	run.Stats = domain.NewMotionStats(run.Params.Axes)

	rows, err := h.db.Query(`
		SELECT axis, max_value, at_time, idx, pair, which, found
		FROM axis_stats WHERE run_id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			axis string
			st   domain.AxisStat
		)
		if err := rows.Scan(&axis, &st.Max, &st.Time, &st.Index, &st.Pair, &st.Which, &st.Found); err != nil {
			return nil, err
		}
		if target, ok := run.Stats.Stats[domain.Axis(axis)]; ok {
			*target = st
		}
	}

	return &run, rows.Err()
}

// Delete removes a run and its results. Deleting an unknown id is not an error.
func (h *History) Delete(id string) error {
	tx, err := h.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.deleteRun(id); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}
	return tx.Commit()
}

func (h *History) begin() (*historyTx, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &historyTx{tx: tx}, nil
}

func encodeColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// column pairs a JSON-encoded list column with its destination
type column struct {
	raw string
	dst any
}

func decodeColumns(cols ...column) error {
	for _, c := range cols {
		if err := json.Unmarshal([]byte(c.raw), c.dst); err != nil {
			return err
		}
	}
	return nil
}
