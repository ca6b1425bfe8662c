package cmd

import (
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/PolarWolf314/toyrsa/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	decryptCipher string
	decryptKey    string
	decryptN      string
	decryptD      string
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptCipher, "cipher", "c", "", "integer ciphertext to decrypt")
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "key file written by keygen --out")
	decryptCmd.Flags().StringVar(&decryptN, "n", "", "modulus (with --d, instead of --key)")
	decryptCmd.Flags().StringVar(&decryptD, "d", "", "private exponent (with --n, instead of --key)")

	_ = decryptCmd.MarkFlagRequired("cipher")
	decryptCmd.MarkFlagsMutuallyExclusive("key", "n")
	decryptCmd.MarkFlagsMutuallyExclusive("key", "d")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptCipher = ""
	decryptKey = ""
	decryptN = ""
	decryptD = ""
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt one integer with a private key",
	Long: `Computes mm = c ** d % n for a single integer ciphertext.

The private key comes from a key file (--key) or is given directly
with --n and --d.

Examples:
  toyrsa decrypt --key key.toml --cipher 2790
  toyrsa decrypt --n 3233 --d 2753 --cipher 2790`,
	RunE: runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting decrypt command")

	spinner, cleanup := startSpinner("Decrypting...")
	defer cleanup()

	opts := workflows.DecryptOptions{
		KeyPath: decryptKey,
		Audit:   Config.Audit.Enabled,
	}

	var err error
	if opts.Ciphertext, err = parseIntFlag("cipher", decryptCipher); err == nil {
		if opts.N, err = parseIntFlag("n", decryptN); err == nil {
			opts.D, err = parseIntFlag("d", decryptD)
		}
	}
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return shownError{err}
	}

	result, err := workflows.Decrypt(cmd.Context(), opts)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return shownError{err}
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Decrypted message mm = c ** d % n = " + ui.Value.Sprint(result.Recovered)
	return nil
}
