package workflows

import (
	"context"
	"io"
	"math/big"

	"github.com/PolarWolf314/toyrsa/internal/audit"
	"github.com/PolarWolf314/toyrsa/internal/keystore"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
)

// KeyGenOptions configures the keygen workflow.
type KeyGenOptions struct {
	// P and Q are the prime pair.
	P, Q *big.Int

	// PublicExponent fixes e instead of drawing it at random.
	PublicExponent *big.Int

	// Random is the source for the exponent search. Defaults to crypto/rand.
	Random io.Reader

	// MaxExponentAttempts bounds the exponent search. 0 keeps the default.
	MaxExponentAttempts int

	// OutPath saves the key pair to a TOML file when set.
	OutPath string

	// Force allows OutPath to replace an existing file.
	Force bool

	// Audit appends an entry to the operation log.
	Audit bool
}

// KeyGenResult contains the outcome of a keygen operation.
type KeyGenResult struct {
	KeyPair *rsa.KeyPair

	// KeyID is the saved file's ID; empty when nothing was saved.
	KeyID string

	// OutPath is where the key pair was saved.
	OutPath string
}

// KeyGen derives a key pair from p and q.
//
// Returns ErrInvalidPrimes if p and q are not distinct usable primes.
// Returns ErrInvalidExponent if a fixed exponent is out of range.
// Returns ErrExponentSearchExhausted if no coprime exponent was drawn.
// Returns ErrKeyFileExists if OutPath exists and Force is not set.
func KeyGen(ctx context.Context, opts KeyGenOptions) (*KeyGenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kp, err := deriveKeyPair(opts.P, opts.Q, opts.PublicExponent, opts.Random, opts.MaxExponentAttempts)
	if err != nil {
		return nil, err
	}

	result := &KeyGenResult{KeyPair: kp}

	if opts.OutPath != "" {
		stored, err := keystore.Save(opts.OutPath, kp, opts.Force)
		if err != nil {
			return nil, err
		}
		result.KeyID = stored.ID
		result.OutPath = opts.OutPath
	}

	if opts.Audit {
		audit.Log(audit.Entry{
			Operation: "keygen",
			KeyID:     result.KeyID,
			KeyFile:   result.OutPath,
			Modulus:   kp.N().String(),
			Exponent:  kp.E().String(),
			Attempts:  kp.Attempts(),
		})
	}

	return result, nil
}

func deriveKeyPair(p, q, e *big.Int, random io.Reader, maxAttempts int) (*rsa.KeyPair, error) {
	if e != nil {
		return rsa.FromExponent(p, q, e)
	}
	return rsa.Generate(p, q, random, rsa.WithMaxAttempts(maxAttempts))
}
