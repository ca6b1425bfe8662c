package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"golang.org/x/term"
)

// Prompter asks a question and returns the answer without its line ending.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Console prompts on a writer and reads answers line by line.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole prompts on out and reads answers from in.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and returns the next line, trimmed.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Retry configures ReadInt.
type Retry struct {
	// MaxAttempts is the number of answers accepted before giving up.
	// Values below 1 allow a single attempt.
	MaxAttempts int

	// OnReject is called with the reason each rejected answer was refused.
	OnReject func(err error)
}

// ReadInt prompts until the answer parses as an integer and passes validate.
// validate may be nil.
func ReadInt(p Prompter, label string, validate func(*big.Int) error, retry Retry) (*big.Int, error) {
	maxAttempts := retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var last error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := p.Prompt(label)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", strings.TrimSpace(label), err)
		}

		n, err := ParseInt(text)
		if err == nil && validate != nil {
			err = validate(n)
		}
		if err == nil {
			return n, nil
		}

		last = err
		if retry.OnReject != nil {
			retry.OnReject(err)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", kerrors.ErrRetriesExhausted, maxAttempts, last)
}

// ParseInt parses a base-10 integer of any size, ignoring surrounding space.
func ParseInt(text string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrNonIntegerInput, text)
	}
	return n, nil
}

// IsInteractive reports whether f is connected to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
