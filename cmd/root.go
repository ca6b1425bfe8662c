package cmd

import (
	"github.com/PolarWolf314/toyrsa/internal/configs"
	logger "github.com/PolarWolf314/toyrsa/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// skipConfigAnnotation marks commands that must run even when the config file is broken.
const skipConfigAnnotation = "toyrsa/skip-config"

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	// Config is loaded before every command that does not opt out.
	Config = configs.DefaultConfig()

	RootCmd = &cobra.Command{
		Use:   "toyrsa",
		Short: "Toy RSA - textbook RSA on numbers small enough to follow by hand",
		Long: `Toy RSA walks through the RSA public-key cryptosystem end to end.

Pick two primes, watch the modulus, totient and both exponents being
derived, then encrypt and decrypt a single number with the resulting keys.

This is a teaching tool. Keys are tiny, there is no padding and nothing
is constant-time: never use it to protect real data.

Examples:
  toyrsa demo                               # Interactive walkthrough
  toyrsa demo --p 61 --q 53 --m 65          # Walkthrough without prompts
  toyrsa keygen --p 61 --q 53 --out k.toml  # Save a key pair
  toyrsa encrypt --key k.toml --message 65
  toyrsa decrypt --key k.toml --cipher 2790`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}

			cfg, err := configs.LoadConfig(configPath)
			if err != nil {
				return err
			}
			Logger.Debugf("Loaded config: max_exponent_attempts=%d, max_retries=%d, audit=%t",
				cfg.Keygen.MaxExponentAttempts, cfg.Prompt.MaxRetries, cfg.Audit.Enabled)
			Config = cfg
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default is the user config directory)")

	RootCmd.AddCommand(demoCmd)
	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(isPrimeCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// ResetGlobalState resets all global variables and flags to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	Config = configs.DefaultConfig()
	Logger = logger.Logger{}

	resetDemoCommandState()
	resetKeygenCommandState()
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetLogCommandState()
	resetConfigInitState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag of cmd and its children.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}
