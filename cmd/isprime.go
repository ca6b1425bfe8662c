package cmd

import (
	"fmt"

	"github.com/PolarWolf314/toyrsa/internal/numtheory"
	"github.com/PolarWolf314/toyrsa/internal/prompt"
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/spf13/cobra"
)

var isPrimeCmd = &cobra.Command{
	Use:   "isprime N...",
	Short: "Check whether numbers are prime",
	Long: `Tests each argument for primality by trial division.

Handy for picking p and q before running demo or keygen.

Examples:
  toyrsa isprime 61 53
  toyrsa isprime 561`,
	Args: cobra.MinimumNArgs(1),
	Annotations: map[string]string{
		skipConfigAnnotation: "true",
	},
	RunE: runIsPrime,
}

func runIsPrime(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting isprime command with %d arguments", len(args))

	var firstErr error
	for _, arg := range args {
		n, err := prompt.ParseInt(arg)
		if err != nil {
			fmt.Println(formatError(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if numtheory.IsPrime(n) {
			fmt.Printf("%s %s is prime\n", ui.Success.Sprint("✓"), ui.Value.Sprint(n))
		} else {
			fmt.Printf("%s %s is not prime\n", ui.Muted.Sprint("·"), ui.Value.Sprint(n))
		}
	}

	if firstErr != nil {
		return shownError{firstErr}
	}
	return nil
}
