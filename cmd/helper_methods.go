package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/prompt"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// Execute runs the root command and prints any error a command has not
// already shown to the user.
func Execute() error {
	err := RootCmd.Execute()
	if err == nil {
		return nil
	}

	var shown shownError
	if !errors.As(err, &shown) {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// shownError wraps an error whose message has already been printed.
type shownError struct {
	err error
}

func (s shownError) Error() string { return s.err.Error() }
func (s shownError) Unwrap() error { return s.err }

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// formatError formats an error for display to the user.
func formatError(err error) string {
	fail := ui.Error.Sprint("✗") + " " + err.Error()
	hint := func(text string) string {
		return fail + "\n" + ui.Info.Sprint("→") + " " + text
	}

	switch {
	case errors.Is(err, kerrors.ErrRetriesExhausted):
		return hint("Run the command again, or pass the values with " + ui.Flag.Sprint("--p") + ", " +
			ui.Flag.Sprint("--q") + " and " + ui.Flag.Sprint("--m"))

	case errors.Is(err, kerrors.ErrInvalidPrimes):
		return hint("p and q must be two different primes whose product is larger than 6")

	case errors.Is(err, kerrors.ErrMessageTooLarge), errors.Is(err, kerrors.ErrNegativeMessage):
		return hint("The message must satisfy 0 <= m < n")

	case errors.Is(err, kerrors.ErrInvalidExponent):
		return hint("Choose e with 1 < e < phi and no factor in common with phi, or omit " + ui.Flag.Sprint("--e"))

	case errors.Is(err, kerrors.ErrExponentSearchExhausted):
		return hint("Raise " + ui.Code.Sprint("keygen.max_exponent_attempts") + " in the config file")

	case errors.Is(err, kerrors.ErrNonIntegerInput):
		return hint("Numbers must be written as base-10 integers")

	case errors.Is(err, kerrors.ErrMissingKey):
		return hint("Pass " + ui.Flag.Sprint("--key") + " with a key file, or the key values as flags")

	case errors.Is(err, kerrors.ErrInvalidKey):
		return hint("n must be greater than 1 and the exponent positive")

	case errors.Is(err, kerrors.ErrKeyFileNotFound):
		return hint("Create one with " + ui.Code.Sprint("toyrsa keygen --out <file>"))

	case errors.Is(err, kerrors.ErrKeyFileExists):
		return hint("Use " + ui.Flag.Sprint("--force") + " to replace it")

	case errors.Is(err, kerrors.ErrInvalidKeyFile):
		return hint("Regenerate the key with " + ui.Code.Sprint("toyrsa keygen"))

	case errors.Is(err, kerrors.ErrInvalidConfig):
		return hint("Fix the file or recreate it with " + ui.Code.Sprint("toyrsa config init --force"))

	case errors.Is(err, kerrors.ErrMissingInput):
		return hint("Give a non-empty value for every number the command needs")

	case errors.Is(err, kerrors.ErrInternal):
		return hint("This is a bug, please report it with the values you used")

	default:
		return fail
	}
}

// parseIntFlag parses an integer flag value. An empty value yields nil.
func parseIntFlag(name, value string) (*big.Int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := prompt.ParseInt(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return n, nil
}

// seededRandom returns a deterministic source when --seed was given, and nil
// (crypto/rand) otherwise.
func seededRandom(cmd *cobra.Command, seed uint64) io.Reader {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	Logger.Debugf("Using seeded random source with seed %d", seed)
	return rsa.NewSeededReader(seed)
}
