package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/toyrsa/internal/configs"
)

// Entry represents a single log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // demo, keygen, encrypt or decrypt.

	// Optional fields depending on operation.
	KeyID    string `json:"key_id,omitempty"`   // For operations using a key file.
	KeyFile  string `json:"key_file,omitempty"` // For keygen --out and --key.
	Modulus  string `json:"n,omitempty"`        // Public modulus.
	Exponent string `json:"e,omitempty"`        // Public exponent.
	Attempts int    `json:"attempts,omitempty"` // Exponent candidates drawn.
	Verified *bool  `json:"verified,omitempty"` // For demo.
}

// Log appends an entry to the operation log.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the operation log.
func LogPath() string {
	return configs.AuditLogPath()
}

// ReadEntries reads all entries from the operation log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Bool returns a pointer to b, for Entry.Verified.
func Bool(b bool) *bool {
	return &b
}
