// Package audit records toyrsa operations in an append-only log.
//
// Every key generation, encryption, decryption and demo run appends one
// entry, so past runs and their moduli can be reviewed with `toyrsa log`.
// Private exponents and messages are never written.
//
// # Log Format
//
// The log is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_DATA_HOME/toyrsa/audit.jsonl
//
// # Failure Handling
//
// Logging is best-effort. If the write fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the log. Malformed entries are silently
// skipped to tolerate partial writes.
package audit
