package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/toyrsa/internal/audit"
	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
)

const auditTimestampLayout = "2006-01-02T15:04:05.000000Z"

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Since filters entries after this date (YYYY-MM-DD format).
	Since string

	// Until filters entries before this date (YYYY-MM-DD format).
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the operation log.
//
// Returns ErrNoLogFound if no log exists yet.
// Returns ErrInvalidDateFormat if the date format is invalid.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logPath := audit.LogPath()
	if logPath == "" {
		return nil, kerrors.ErrNoLogFound
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, kerrors.ErrNoLogFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading operation log: %w", err)
	}

	entries, err := audit.ParseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("parsing operation log: %w", err)
	}

	result := &LogResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	if len(entries) == 0 {
		result.Entries = entries
		return result, nil
	}

	filtered := entries

	if opts.Operations != "" {
		ops := strings.Split(opts.Operations, ",")
		for i := range ops {
			ops[i] = strings.TrimSpace(ops[i])
		}
		filtered = filterByOperations(filtered, ops)
	}

	if opts.Since != "" {
		sinceTime, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterByTime(filtered, func(t time.Time) bool { return !t.Before(sinceTime) })
	}

	if opts.Until != "" {
		untilTime, err := time.Parse("2006-01-02", opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		// Include the entire day.
		untilTime = untilTime.Add(24*time.Hour - time.Nanosecond)
		filtered = filterByTime(filtered, func(t time.Time) bool { return !t.After(untilTime) })
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// The limit always keeps the most recent entries.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filterByOperations(entries []audit.Entry, ops []string) []audit.Entry {
	opSet := make(map[string]bool)
	for _, op := range ops {
		opSet[strings.ToLower(op)] = true
	}

	var result []audit.Entry
	for _, e := range entries {
		if opSet[strings.ToLower(e.Operation)] {
			result = append(result, e)
		}
	}
	return result
}

// filterByTime keeps entries whose timestamp satisfies keep. Entries with an
// unreadable timestamp are dropped.
func filterByTime(entries []audit.Entry, keep func(time.Time) bool) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, ok := parseTimestamp(e.Timestamp)
		if ok && keep(t) {
			result = append(result, e)
		}
	}
	return result
}

func parseTimestamp(ts string) (time.Time, bool) {
	t, err := time.Parse(auditTimestampLayout, ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	return t, err == nil
}

// FormatDate formats a timestamp string to YYYY-MM-DD format.
func FormatDate(ts string) string {
	t, ok := parseTimestamp(ts)
	if !ok {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}
	return t.Format("2006-01-02")
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS format.
func FormatDateTime(ts string) string {
	t, ok := parseTimestamp(ts)
	if !ok {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails formats the details for a log entry in verbose format.
func FormatDetails(e audit.Entry) string {
	var parts []string
	if e.Modulus != "" {
		parts = append(parts, "n="+e.Modulus)
	}
	if e.Exponent != "" {
		parts = append(parts, "e="+e.Exponent)
	}

	switch e.Operation {
	case "demo":
		if e.Attempts > 0 {
			parts = append(parts, fmt.Sprintf("%d exponent draws", e.Attempts))
		}
		if e.Verified != nil {
			parts = append(parts, verifiedLabel(*e.Verified))
		}
	case "keygen":
		if e.Attempts > 0 {
			parts = append(parts, fmt.Sprintf("%d exponent draws", e.Attempts))
		}
		if e.KeyFile != "" {
			parts = append(parts, "saved to "+e.KeyFile)
		}
	case "encrypt", "decrypt":
		if e.KeyFile != "" {
			parts = append(parts, "key "+e.KeyFile)
		}
	}

	return strings.Join(parts, ", ")
}

// FormatDetailsOneline formats the details for a log entry in oneline format.
func FormatDetailsOneline(e audit.Entry) string {
	switch e.Operation {
	case "demo":
		if e.Verified != nil {
			return fmt.Sprintf("n=%s %s", e.Modulus, verifiedLabel(*e.Verified))
		}
		return "n=" + e.Modulus
	case "keygen":
		if e.KeyFile != "" {
			return e.KeyFile
		}
		return "n=" + e.Modulus
	case "encrypt", "decrypt":
		if e.KeyFile != "" {
			return e.KeyFile
		}
		return "n=" + e.Modulus
	default:
		return ""
	}
}

func verifiedLabel(ok bool) string {
	if ok {
		return "verified"
	}
	return "MISMATCH"
}
