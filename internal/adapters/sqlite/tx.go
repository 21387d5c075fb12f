package sqlite

import (
	"database/sql"
	"fmt"

	"pdsutils/internal/domain"
)

// historyTx groups the writes of one Save or Delete
type historyTx struct {
	tx *sql.Tx
}

// insertRun writes the run row
func (t *historyTx) insertRun(run *domain.ScanRun) error {
	axes := make([]string, len(run.Params.Axes))
	for i, a := range run.Params.Axes {
		axes[i] = string(a)
	}

	encoded := make([]string, 4)
	for i, v := range []any{run.Params.Cases, run.Params.Realizations, run.Params.Chain, axes} {
		s, err := encodeColumn(v)
		if err != nil {
			return fmt.Errorf("failed to encode run parameters: %w", err)
		}
		encoded[i] = s
	}

	_, err := t.tx.Exec(`
		INSERT INTO runs (id, root, cases, realizations, chain, axes, start_time, sample_interval, created_at, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Params.Root, encoded[0], encoded[1], encoded[2], encoded[3],
		run.Params.StartTime, run.Params.SampleInterval, run.CreatedAt.UnixNano(), int64(run.Duration))
	return err
}

// insertAxisStat writes the result of one axis
func (t *historyTx) insertAxisStat(runID string, axis domain.Axis, st domain.AxisStat) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO axis_stats (run_id, axis, max_value, at_time, idx, pair, which, found)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, string(axis), st.Max, st.Time, st.Index, st.Pair, st.Which, st.Found)
	return err
}

// deleteRun removes a run and its axis results
func (t *historyTx) deleteRun(id string) error {
	if _, err := t.tx.Exec(`DELETE FROM axis_stats WHERE run_id = ?`, id); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM runs WHERE id = ?`, id)
	return err
}

// Commit commits the transaction
func (t *historyTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *historyTx) Rollback() error {
	return t.tx.Rollback()
}
