package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/toyrsa/internal/audit"
	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/PolarWolf314/toyrsa/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the operation log",
	Long: `Displays the log of demo, keygen, encrypt and decrypt runs.

Only public values are recorded: the modulus, the public exponent and
the key file used. Logging can be turned off with audit.enabled in the
config file.

Examples:
  toyrsa log                              # View full log
  toyrsa log -n 10                        # Last 10 entries
  toyrsa log --reverse                    # Most recent first
  toyrsa log --operation encrypt,decrypt  # Filter by operation
  toyrsa log --since 2026-01-01           # Filter by date
  toyrsa log --json                       # JSON output`,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading operation log...")
	defer cleanup()

	opts := workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		Since:      logSince,
		Until:      logUntil,
	}

	result, err := workflows.Log(cmd.Context(), opts)
	if err != nil {
		spinner.FinalMSG = formatLogError(err)
		if isLogUnexpectedError(err) {
			return shownError{err}
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from operation log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	spinner.FinalMSG = ""
	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No log entries found.")
		} else {
			fmt.Println("No log entries found matching the filters.")
		}
		return nil
	}

	if logJSON {
		return outputLogJSON(result.Entries)
	}

	if logOneline {
		outputLogOneline(result.Entries)
		return nil
	}

	outputLogDefault(result.Entries)
	return nil
}

// formatLogError formats a log error for display to the user.
func formatLogError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoLogFound):
		return ui.Info.Sprint("ℹ") + " No operation log found. Operations are logged once you run demo, keygen, encrypt or decrypt."

	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read operation log: " + err.Error()
	}
}

// isLogUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isLogUnexpectedError(err error) bool {
	return !errors.Is(err, kerrors.ErrNoLogFound)
}

func outputLogJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogOneline(entries []audit.Entry) {
	for _, e := range entries {
		date := workflows.FormatDate(e.Timestamp)
		details := workflows.FormatDetailsOneline(e)
		fmt.Printf("%s %s %s\n", date, e.Operation, details)
	}
}

func outputLogDefault(entries []audit.Entry) {
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		details := workflows.FormatDetails(e)
		fmt.Printf("%-19s  %-8s  %s\n", datetime, e.Operation, details)
	}
}
