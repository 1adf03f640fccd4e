package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanKisilenko/immutable/internal/ledger"
)

func seedLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")

	l, err := ledger.Open(path)
	require.NoError(t, err)
	defer l.Close()

	ctx := context.Background()
	require.NoError(t, l.WriteRun(ctx, ledger.Run{
		ID: "run-a", Started: 1000, Fingerprint: "fp-1", Checked: 2, Failed: 0,
	}))
	require.NoError(t, l.WriteRun(ctx, ledger.Run{
		ID: "run-b", Started: 1001, Fingerprint: "fp-2", Checked: 2, Failed: 1,
	}))
	return path
}

// TestHistoryCommand_Text lists runs oldest first with status and
// counts.
func TestHistoryCommand_Text(t *testing.T) {
	path := seedLedger(t)
	cmd := NewHistoryCommand(&RootOptions{Format: "text"})

	out, _, err := execute(cmd, "--ledger", path)
	require.NoError(t, err)

	want := "run-a  1970-01-01T00:16:40Z  ok        2 checked  fp-1\n" +
		"run-b  1970-01-01T00:16:41Z  FAIL(1)   2 checked  fp-2\n"
	assert.Equal(t, want, out)
}

// TestHistoryCommand_JSON verifies the JSON envelope.
func TestHistoryCommand_JSON(t *testing.T) {
	path := seedLedger(t)
	cmd := NewHistoryCommand(&RootOptions{Format: "json"})

	out, _, err := execute(cmd, "--ledger", path)
	require.NoError(t, err)

	var response struct {
		Status string       `json:"status"`
		Data   []RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &response))

	assert.Equal(t, "ok", response.Status)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "run-a", response.Data[0].ID)
	assert.Equal(t, "1970-01-01T00:16:40Z", response.Data[0].Started)
	assert.Equal(t, 1, response.Data[1].Failed)
}

// TestHistoryCommand_EmptyLedger reports no runs without failing.
func TestHistoryCommand_EmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	l, err := ledger.Open(path)
	require.NoError(t, err)
	l.Close()

	cmd := NewHistoryCommand(&RootOptions{Format: "text"})

	out, _, err := execute(cmd, "--ledger", path)
	require.NoError(t, err)
	assert.Equal(t, "no runs recorded\n", out)
}

// TestHistoryCommand_RequiresLedgerFlag rejects invocation without
// --ledger.
func TestHistoryCommand_RequiresLedgerFlag(t *testing.T) {
	cmd := NewHistoryCommand(&RootOptions{Format: "text"})

	_, _, err := execute(cmd)
	require.Error(t, err)
}
