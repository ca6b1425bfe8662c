// Package prompt collects integers from a user, retrying on bad input.
//
// The arithmetic packages never read from the console. Interactive commands
// depend on the Prompter capability instead, so tests can script answers and
// the core stays free of I/O.
//
//	session := &prompt.Session{
//	    Prompter: prompt.NewConsole(os.Stdin, os.Stdout),
//	    Retry:    prompt.Retry{MaxAttempts: 5, OnReject: report},
//	}
//	p, q, err := session.ReadPrimes(ctx)
//
// ReadInt owns the retry policy: text that is not an integer fails with
// ErrNonIntegerInput, values rejected by the validator are reported through
// Retry.OnReject, and after MaxAttempts rejections the call fails with
// ErrRetriesExhausted. Read errors such as EOF are returned immediately.
package prompt
