package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RomanKisilenko/immutable/internal/ledger"
)

// RunSummary is one recorded run in the history listing.
type RunSummary struct {
	ID          string `json:"id"`
	Started     string `json:"started"` // RFC 3339, UTC
	Fingerprint string `json:"fingerprint"`
	Checked     int    `json:"checked"`
	Failed      int    `json:"failed"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded verification runs",
		Long: `List every run recorded in a ledger database, oldest first, with
the model fingerprint and pass/fail counts of each run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, ledgerPath, cmd)
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger database to read")
	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func runHistory(opts *RootOptions, ledgerPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	l, err := ledger.Open(ledgerPath)
	if err != nil {
		_ = formatter.Error(ErrCodeLedger, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening ledger failed", err)
	}
	defer l.Close()

	runs, err := l.ListRuns(context.Background())
	if err != nil {
		_ = formatter.Error(ErrCodeLedger, err.Error(), nil)
		return WrapExitError(ExitCommandError, "listing runs failed", err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, RunSummary{
			ID:          run.ID,
			Started:     time.Unix(run.Started, 0).UTC().Format(time.RFC3339),
			Fingerprint: run.Fingerprint,
			Checked:     run.Checked,
			Failed:      run.Failed,
		})
	}

	if formatter.Format == "json" {
		return writeJSON(formatter, CLIResponse{
			Status: "ok",
			Data:   summaries,
		})
	}

	if len(summaries) == 0 {
		return formatter.Success("no runs recorded")
	}
	for _, s := range summaries {
		status := "ok"
		if s.Failed > 0 {
			status = fmt.Sprintf("FAIL(%d)", s.Failed)
		}
		fmt.Fprintf(formatter.Writer, "%s  %s  %-8s  %d checked  %s\n",
			s.ID, s.Started, status, s.Checked, s.Fingerprint)
	}
	return nil
}
