// Package errors provides typed error values for toyrsa.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Arithmetic errors: key derivation and cipher preconditions
//     (ErrInvalidPrimes, ErrMessageTooLarge, ErrNoInverse)
//   - Input errors: raised by the prompt layer (ErrNonIntegerInput,
//     ErrRetriesExhausted)
//   - File errors: key files, configuration and the operation log
//     (ErrKeyFileNotFound, ErrInvalidConfig, ErrNoLogFound)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return nil, fmt.Errorf("%w: p=%s is not prime", kerrors.ErrInvalidPrimes, p)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Demo(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidPrimes) {
//	    // Show user-friendly message
//	}
//
// ErrNoInverse is only observable from numtheory.ModInverse. Key generation
// never returns it on its own; if it shows up there it is wrapped in
// ErrInternal.
package errors
