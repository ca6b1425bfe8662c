package cmd

import (
	"fmt"

	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/PolarWolf314/toyrsa/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	keygenP     string
	keygenQ     string
	keygenE     string
	keygenSeed  uint64
	keygenOut   string
	keygenForce bool
)

func init() {
	keygenCmd.Flags().StringVar(&keygenP, "p", "", "first prime")
	keygenCmd.Flags().StringVar(&keygenQ, "q", "", "second prime")
	keygenCmd.Flags().StringVar(&keygenE, "e", "", "use this public exponent instead of drawing one")
	keygenCmd.Flags().Uint64Var(&keygenSeed, "seed", 0, "seed the exponent search for a reproducible key")
	keygenCmd.Flags().StringVarP(&keygenOut, "out", "o", "", "save the key pair to this TOML file")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "replace an existing key file")

	_ = keygenCmd.MarkFlagRequired("p")
	_ = keygenCmd.MarkFlagRequired("q")
}

// resetKeygenCommandState resets the keygen command's global state for testing.
func resetKeygenCommandState() {
	keygenP = ""
	keygenQ = ""
	keygenE = ""
	keygenSeed = 0
	keygenOut = ""
	keygenForce = false
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Derive a key pair from two primes",
	Long: `Derives n, phi, e and d from two distinct primes and prints them.

With --out the key pair is written to a TOML file (mode 0600) that the
encrypt and decrypt commands can read with --key.

Examples:
  toyrsa keygen --p 61 --q 53
  toyrsa keygen --p 61 --q 53 --e 17 --out key.toml
  toyrsa keygen --p 1009 --q 1013 --seed 7`,
	RunE: runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting keygen command")

	spinner, cleanup := startSpinner("Searching for a public exponent...")
	defer cleanup()

	opts := workflows.KeyGenOptions{
		Random:              seededRandom(cmd, keygenSeed),
		MaxExponentAttempts: Config.Keygen.MaxExponentAttempts,
		OutPath:             keygenOut,
		Force:               keygenForce,
		Audit:               Config.Audit.Enabled,
	}

	var err error
	if opts.P, err = parseIntFlag("p", keygenP); err == nil {
		if opts.Q, err = parseIntFlag("q", keygenQ); err == nil {
			opts.PublicExponent, err = parseIntFlag("e", keygenE)
		}
	}
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return shownError{err}
	}

	result, err := workflows.KeyGen(cmd.Context(), opts)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return shownError{err}
	}

	kp := result.KeyPair
	Logger.Debugf("Exponent search took %d draws", kp.Attempts())

	msg := ui.Success.Sprint("✓") + " Key pair derived\n" +
		fmt.Sprintf("  n   = %s\n", ui.Value.Sprint(kp.N())) +
		fmt.Sprintf("  phi = %s\n", ui.Value.Sprint(kp.Phi())) +
		fmt.Sprintf("  e   = %s\n", ui.Value.Sprint(kp.E())) +
		fmt.Sprintf("  d   = %s", ui.Value.Sprint(kp.D()))
	if result.OutPath != "" {
		msg += "\n" + ui.Info.Sprint("→") + " Saved to " + ui.Path.Sprint(result.OutPath) +
			" " + ui.Muted.Sprintf("id %s", result.KeyID)
	}
	spinner.FinalMSG = msg
	return nil
}
