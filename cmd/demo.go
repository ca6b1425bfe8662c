package cmd

import (
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/prompt"
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/PolarWolf314/toyrsa/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	demoP        string
	demoQ        string
	demoM        string
	demoE        string
	demoSeed     uint64
	demoNoBanner bool
)

func init() {
	demoCmd.Flags().StringVar(&demoP, "p", "", "first prime (prompted when omitted)")
	demoCmd.Flags().StringVar(&demoQ, "q", "", "second prime (prompted when omitted)")
	demoCmd.Flags().StringVar(&demoM, "m", "", "message to encrypt (prompted when omitted)")
	demoCmd.Flags().StringVar(&demoE, "e", "", "use this public exponent instead of drawing one")
	demoCmd.Flags().Uint64Var(&demoSeed, "seed", 0, "seed the exponent search for a reproducible run")
	demoCmd.Flags().BoolVar(&demoNoBanner, "no-banner", false, "do not print the title banner")
}

// resetDemoCommandState resets the demo command's global state for testing.
func resetDemoCommandState() {
	demoP = ""
	demoQ = ""
	demoM = ""
	demoE = ""
	demoSeed = 0
	demoNoBanner = false
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through key generation, encryption and decryption",
	Long: `Runs the whole RSA pipeline on one message and prints every value on the way:

  1. read two distinct primes p and q
  2. modulus n = p * q and phi = (p - 1) * (q - 1)
  3. draw a public exponent e coprime to phi
  4. derive the private exponent d with e * d mod phi = 1
  5. read a message m < n, encrypt it to c and decrypt c back to mm
  6. check that mm equals m

Any value not given by flag is prompted for. Invalid answers are
rejected and asked again.

Examples:
  toyrsa demo
  toyrsa demo --p 61 --q 53 --m 65 --e 17
  toyrsa demo --p 61 --q 53 --seed 42`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting demo command")

	input, err := demoInput(cmd)
	if err != nil {
		fmt.Println(formatError(err))
		return shownError{err}
	}

	e, err := parseIntFlag("e", demoE)
	if err != nil {
		fmt.Println(formatError(err))
		return shownError{err}
	}

	printDemoTitle()

	opts := workflows.DemoOptions{
		Input:               input,
		Report:              printDemoEvent,
		PublicExponent:      e,
		Random:              seededRandom(cmd, demoSeed),
		MaxExponentAttempts: Config.Keygen.MaxExponentAttempts,
		Audit:               Config.Audit.Enabled,
	}

	result, err := workflows.Demo(cmd.Context(), opts)
	if err != nil {
		fmt.Println()
		fmt.Println(formatError(err))
		return shownError{err}
	}

	Logger.Debugf("Exponent search took %d draws", result.KeyPair.Attempts())

	fmt.Print("[*] Is m == mm ? ... ")
	if !result.Verified {
		fmt.Println(ui.Error.Sprint("NOT OK -- CHECK FOR ANY ERROR"))
		fmt.Println()
		return shownError{fmt.Errorf("%w: recovered message %s differs from %s", kerrors.ErrInternal, result.Recovered, result.Message)}
	}
	fmt.Println(ui.Success.Sprint("OK WORKING EXAMPLE"))
	fmt.Println()

	return nil
}

// demoInput combines values given by flag with prompts for the rest.
func demoInput(cmd *cobra.Command) (workflows.Input, error) {
	p, err := parseIntFlag("p", demoP)
	if err != nil {
		return nil, err
	}
	q, err := parseIntFlag("q", demoQ)
	if err != nil {
		return nil, err
	}
	if (p == nil) != (q == nil) {
		return nil, fmt.Errorf("%w: --p and --q must be given together", kerrors.ErrMissingInput)
	}
	m, err := parseIntFlag("m", demoM)
	if err != nil {
		return nil, err
	}

	session := &prompt.Session{
		Prompter: prompt.NewConsole(cmd.InOrStdin(), os.Stdout),
		Retry: prompt.Retry{
			MaxAttempts: Config.Prompt.MaxRetries,
			OnReject: func(err error) {
				Logger.Debugf("Rejected answer: %v", err)
				fmt.Println(ui.Warning.Sprint(prompt.RejectionMessage(err)))
			},
		},
	}

	return workflows.FixedInput{P: p, Q: q, M: m, Fallback: session}, nil
}

func printDemoTitle() {
	if !demoNoBanner && Config.Display.Banner && prompt.IsInteractive(os.Stdout) {
		printBanner(Config.Display.BannerFont)
	}

	fmt.Println("Simple RSA encryption example")
	fmt.Println(strings.Repeat("-", 29))
	fmt.Println()
}

// printBanner draws the title in font. An unknown font is reported even
// without --verbose.
func printBanner(font string) {
	banner, err := ui.Banner("Toy RSA", font)
	if err != nil {
		Logger.WarnfAlways("Skipping banner: %v (check display.banner_font in the config file)", err)
		return
	}
	fmt.Print(banner)
}

func printDemoEvent(ev workflows.Event) {
	kp := ev.KeyPair
	v := ui.Value.Sprint

	switch ev.Stage {
	case workflows.StageModulus:
		fmt.Printf("modulus n = p * q = %s * %s = %s\n", kp.P(), kp.Q(), v(ev.Value))
	case workflows.StageTotient:
		fmt.Printf("phi = (p - 1) * (q - 1) = (%s - 1) * (%s - 1) = %s\n", kp.P(), kp.Q(), v(ev.Value))
		fmt.Println()
	case workflows.StagePublicExponent:
		fmt.Printf("Choose public key e: %s\n", v(ev.Value))
		fmt.Printf("[*] %s and %s have no common factors except 1\n", ev.Value, kp.Phi())
		fmt.Println()
	case workflows.StagePrivateExponent:
		fmt.Printf("Computed private key d: %s\n", v(ev.Value))
		fmt.Printf("[*] %s * %s mod %s = 1\n", kp.E(), ev.Value, kp.Phi())
		fmt.Println()
	case workflows.StageCiphertext:
		fmt.Printf("Encrypted message c = m ** e %% n = %s\n", v(ev.Value))
	case workflows.StageRecovered:
		fmt.Printf("Decrypted message mm = c ** d %% n = %s\n", v(ev.Value))
	}
}
