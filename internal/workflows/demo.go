package workflows

import (
	"context"
	"errors"
	"io"
	"math/big"

	"github.com/PolarWolf314/toyrsa/internal/audit"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
)

// Stage identifies a value produced during a demo run.
type Stage int

const (
	StageModulus Stage = iota
	StageTotient
	StagePublicExponent
	StagePrivateExponent
	StageCiphertext
	StageRecovered
)

func (s Stage) String() string {
	switch s {
	case StageModulus:
		return "modulus"
	case StageTotient:
		return "totient"
	case StagePublicExponent:
		return "public exponent"
	case StagePrivateExponent:
		return "private exponent"
	case StageCiphertext:
		return "ciphertext"
	case StageRecovered:
		return "recovered message"
	default:
		return "unknown"
	}
}

// Event reports one stage of a demo run.
type Event struct {
	Stage Stage
	Value *big.Int

	// KeyPair is set from StageModulus onwards.
	KeyPair *rsa.KeyPair
}

// DemoOptions configures the demo workflow.
type DemoOptions struct {
	// Input supplies the primes and the message.
	Input Input

	// Report is called after each stage. It may be nil.
	Report func(Event)

	// PublicExponent fixes e instead of drawing it at random.
	PublicExponent *big.Int

	// Random is the source for the exponent search. Defaults to crypto/rand.
	Random io.Reader

	// MaxExponentAttempts bounds the exponent search. 0 keeps the default.
	MaxExponentAttempts int

	// Audit appends an entry to the operation log.
	Audit bool
}

// DemoResult contains every value of a demo run.
type DemoResult struct {
	KeyPair    *rsa.KeyPair
	Message    *big.Int
	Ciphertext *big.Int
	Recovered  *big.Int

	// Verified reports whether Recovered equals Message.
	Verified bool
}

// Demo runs the walkthrough: read primes, derive the key pair, read a
// message, encrypt it, decrypt the ciphertext and verify the round trip.
//
// Returns ErrInvalidPrimes if the primes are unusable.
// Returns ErrMessageTooLarge or ErrNegativeMessage if the message is outside [0, n).
// Errors from Input, such as ErrRetriesExhausted, are returned as is.
func Demo(ctx context.Context, opts DemoOptions) (*DemoResult, error) {
	if opts.Input == nil {
		return nil, errors.New("demo requires an input source")
	}
	report := opts.Report
	if report == nil {
		report = func(Event) {}
	}

	p, q, err := opts.Input.ReadPrimes(ctx)
	if err != nil {
		return nil, err
	}

	kp, err := deriveKeyPair(p, q, opts.PublicExponent, opts.Random, opts.MaxExponentAttempts)
	if err != nil {
		return nil, err
	}

	report(Event{Stage: StageModulus, Value: kp.N(), KeyPair: kp})
	report(Event{Stage: StageTotient, Value: kp.Phi(), KeyPair: kp})
	report(Event{Stage: StagePublicExponent, Value: kp.E(), KeyPair: kp})
	report(Event{Stage: StagePrivateExponent, Value: kp.D(), KeyPair: kp})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := opts.Input.ReadMessage(ctx, kp.N())
	if err != nil {
		return nil, err
	}

	c, err := kp.PublicKey().Encrypt(m)
	if err != nil {
		return nil, err
	}
	report(Event{Stage: StageCiphertext, Value: new(big.Int).Set(c), KeyPair: kp})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mm := kp.PrivateKey().Decrypt(c)
	report(Event{Stage: StageRecovered, Value: new(big.Int).Set(mm), KeyPair: kp})

	result := &DemoResult{
		KeyPair:    kp,
		Message:    new(big.Int).Set(m),
		Ciphertext: c,
		Recovered:  mm,
		Verified:   rsa.Verify(m, mm),
	}

	if opts.Audit {
		audit.Log(audit.Entry{
			Operation: "demo",
			Modulus:   kp.N().String(),
			Exponent:  kp.E().String(),
			Attempts:  kp.Attempts(),
			Verified:  audit.Bool(result.Verified),
		})
	}

	return result, nil
}
