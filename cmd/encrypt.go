package cmd

import (
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/PolarWolf314/toyrsa/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptMessage string
	encryptKey     string
	encryptN       string
	encryptE       string
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptMessage, "message", "m", "", "integer message to encrypt, 0 <= m < n")
	encryptCmd.Flags().StringVarP(&encryptKey, "key", "k", "", "key file written by keygen --out")
	encryptCmd.Flags().StringVar(&encryptN, "n", "", "public modulus (with --e, instead of --key)")
	encryptCmd.Flags().StringVar(&encryptE, "e", "", "public exponent (with --n, instead of --key)")

	_ = encryptCmd.MarkFlagRequired("message")
	encryptCmd.MarkFlagsMutuallyExclusive("key", "n")
	encryptCmd.MarkFlagsMutuallyExclusive("key", "e")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptMessage = ""
	encryptKey = ""
	encryptN = ""
	encryptE = ""
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt one integer with a public key",
	Long: `Computes c = m ** e % n for a single integer message.

The public key comes from a key file (--key) or is given directly
with --n and --e.

Examples:
  toyrsa encrypt --key key.toml --message 65
  toyrsa encrypt --n 3233 --e 17 --message 65`,
	RunE: runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encrypt command")

	spinner, cleanup := startSpinner("Encrypting...")
	defer cleanup()

	opts := workflows.EncryptOptions{
		KeyPath: encryptKey,
		Audit:   Config.Audit.Enabled,
	}

	var err error
	if opts.Message, err = parseIntFlag("message", encryptMessage); err == nil {
		if opts.N, err = parseIntFlag("n", encryptN); err == nil {
			opts.E, err = parseIntFlag("e", encryptE)
		}
	}
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return shownError{err}
	}

	result, err := workflows.Encrypt(cmd.Context(), opts)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return shownError{err}
	}

	Logger.Debugf("Encrypted with n=%s, e=%s", result.PublicKey.N, result.PublicKey.E)

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted message c = m ** e % n = " + ui.Value.Sprint(result.Ciphertext)
	return nil
}
