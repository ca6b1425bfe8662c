// Package workflows provides high-level orchestration for toyrsa commands.
//
// Workflows sequence the arithmetic packages (numtheory, rsa), key files
// (keystore) and the operation log (audit) to implement complete user-facing
// features. Each workflow handles a single command's business logic,
// independent of CLI concerns like flag parsing, spinners, and output
// formatting.
//
// # Available Workflows
//
//   - Demo: the full walkthrough from primes to a verified round trip
//   - KeyGen: derives a key pair and optionally saves it
//   - Encrypt / Decrypt: apply one half of a key to a single integer
//   - Log: reads and filters the operation log
//
// # Input
//
// Demo obtains primes and the message through the Input interface, so the
// same pipeline runs against a console prompt, fixed values from flags, or a
// scripted test double.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific conditions:
//
//	result, err := workflows.Demo(ctx, opts)
//	if errors.Is(err, kerrors.ErrRetriesExhausted) {
//	    // Show user-friendly message
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and check it between stages.
package workflows
