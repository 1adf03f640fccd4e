package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RomanKisilenko/immutable"
	"github.com/RomanKisilenko/immutable/internal/ledger"
	"github.com/RomanKisilenko/immutable/model"
)

// TypeResult is one type's verification outcome in the check report.
type TypeResult struct {
	Type      string `json:"type"`
	OK        bool   `json:"ok"`
	Violation string `json:"violation,omitempty"`
}

// CheckReport holds the full outcome of a check run.
type CheckReport struct {
	Fingerprint string       `json:"fingerprint"`
	Checked     int          `json:"checked"`
	Failed      int          `json:"failed"`
	Results     []TypeResult `json:"results"`
	RunID       string       `json:"run_id,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "check <models-dir>",
		Short: "Verify immutability contracts in declarative type models",
		Long: `Load YAML type models from a directory and verify every type marked
immutable against the structural rules: interfaces must carry the
contract marker, concrete types must be sealed, every field must be
final, and array fields must assert immutable contents.

The first violation per type is reported as a causal chain from the
root type down to the offending field.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], ledgerPath, cmd)
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "record the run in a ledger database")

	return cmd
}

func runCheck(opts *RootOptions, modelsDir, ledgerPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	m, err := model.LoadDir(modelsDir)
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading models failed", err)
	}

	marked := m.Marked()
	formatter.VerboseLog("Loaded %d type(s), %d marked immutable", len(m.Names()), len(marked))

	report := CheckReport{
		Fingerprint: m.Fingerprint(),
		Checked:     len(marked),
	}

	checker := immutable.NewChecker()
	for _, t := range marked {
		result := TypeResult{Type: t.Name(), OK: true}
		if err := checker.VerifyType(t); err != nil {
			result.OK = false
			result.Violation = err.Error()
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	if ledgerPath != "" {
		runID, err := recordRun(opts, ledgerPath, &report)
		if err != nil {
			_ = formatter.Error(ErrCodeLedger, err.Error(), nil)
			return WrapExitError(ExitCommandError, "recording run failed", err)
		}
		report.RunID = runID
		formatter.VerboseLog("Recorded run %s in %s", runID, ledgerPath)
	}

	return outputCheckReport(formatter, &report)
}

// recordRun writes the report to the ledger and returns the run ID.
func recordRun(opts *RootOptions, path string, report *CheckReport) (string, error) {
	l, err := ledger.Open(path)
	if err != nil {
		return "", err
	}
	defer l.Close()

	ctx := context.Background()
	run := ledger.Run{
		ID:          ledger.NewRunID(),
		Started:     opts.now().Unix(),
		Fingerprint: report.Fingerprint,
		Checked:     report.Checked,
		Failed:      report.Failed,
	}
	if err := l.WriteRun(ctx, run); err != nil {
		return "", err
	}

	for i, res := range report.Results {
		result := ledger.Result{
			RunID:     run.ID,
			Seq:       int64(i + 1),
			TypeName:  res.Type,
			OK:        res.OK,
			Violation: res.Violation,
		}
		if err := l.WriteResult(ctx, result); err != nil {
			return "", err
		}
	}

	return run.ID, nil
}

// outputCheckReport renders the report and maps failures to exit codes.
func outputCheckReport(formatter *OutputFormatter, report *CheckReport) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "ok",
			Data:   report,
			RunID:  report.RunID,
		}
		if report.Failed > 0 {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    ErrCodeViolation,
				Message: fmt.Sprintf("%d of %d type(s) failed verification", report.Failed, report.Checked),
			}
		}
		if err := writeJSON(formatter, response); err != nil {
			return err
		}
	} else {
		for _, res := range report.Results {
			if res.OK {
				fmt.Fprintf(formatter.Writer, "ok   %s\n", res.Type)
			} else {
				fmt.Fprintf(formatter.Writer, "FAIL %s\n     %s\n", res.Type, res.Violation)
			}
		}
		fmt.Fprintf(formatter.Writer, "\n%d checked, %d failed\n", report.Checked, report.Failed)
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d type(s) failed verification", report.Failed))
	}
	return nil
}
