package ledger

import (
	"context"
	"fmt"
)

// ListRuns returns all recorded runs with deterministic ordering:
// ORDER BY started ASC, id ASC.
//
// Returns an empty slice (not nil) when the ledger has no runs.
func (l *Ledger) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, started, fingerprint, checked, failed
		FROM runs
		ORDER BY started ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Started, &run.Fingerprint, &run.Checked, &run.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Results returns the per-type outcomes of a run in sequence order.
//
// Returns an empty slice (not nil) when the run is unknown or empty.
func (l *Ledger) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT run_id, seq, type_name, ok, violation
		FROM results
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := make([]Result, 0)
	for rows.Next() {
		var res Result
		var ok int
		if err := rows.Scan(&res.RunID, &res.Seq, &res.TypeName, &ok, &res.Violation); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.OK = ok != 0
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return results, nil
}
