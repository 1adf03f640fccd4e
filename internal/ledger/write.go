package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Run is one recorded verification run.
type Run struct {
	ID          string // UUIDv7 run identifier
	Started     int64  // unix seconds
	Fingerprint string // model fingerprint at the time of the run
	Checked     int    // number of marked types verified
	Failed      int    // number of types with violations
}

// Result is the outcome of verifying one type within a run.
type Result struct {
	RunID     string
	Seq       int64  // order within the run, starting at 1
	TypeName  string
	OK        bool
	Violation string // rendered violation chain, empty when OK
}

// NewRunID generates a unique, time-ordered run identifier.
// Uses UUIDv7 so ledger listings sort chronologically by ID.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// WriteRun inserts a run record. Uses ON CONFLICT(id) DO NOTHING for
// idempotency - duplicate run IDs are silently ignored.
func (l *Ledger) WriteRun(ctx context.Context, run Run) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs (id, started, fingerprint, checked, failed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Started,
		run.Fingerprint,
		run.Checked,
		run.Failed,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}

// WriteResult inserts one per-type result. The referenced run must
// exist (foreign key constraint). Duplicate (run_id, seq) pairs are
// silently ignored for idempotency.
func (l *Ledger) WriteResult(ctx context.Context, res Result) error {
	ok := 0
	if res.OK {
		ok = 1
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO results (run_id, seq, type_name, ok, violation)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		res.RunID,
		res.Seq,
		res.TypeName,
		ok,
		res.Violation,
	)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
