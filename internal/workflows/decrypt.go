package workflows

import (
	"context"
	"fmt"
	"math/big"

	"github.com/PolarWolf314/toyrsa/internal/audit"
	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/keystore"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Ciphertext is the integer to decrypt.
	Ciphertext *big.Int

	// KeyPath loads the private key from a key file. Takes precedence over N and D.
	KeyPath string

	// N and D give the private key explicitly.
	N, D *big.Int

	// Audit appends an entry to the operation log.
	Audit bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Recovered *big.Int

	// KeyID is the key file's ID when KeyPath was used.
	KeyID string
}

// Decrypt decrypts a single integer under a private key.
//
// Returns ErrMissingInput if Ciphertext is nil.
// Returns ErrMissingKey if neither KeyPath nor both N and D are set.
// Returns ErrInvalidKey if N or D are out of range.
// Returns ErrKeyFileNotFound or ErrInvalidKeyFile if the key file is unusable.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Ciphertext == nil {
		return nil, fmt.Errorf("%w: ciphertext c", kerrors.ErrMissingInput)
	}

	priv, keyID, err := resolvePrivateKey(opts.KeyPath, opts.N, opts.D)
	if err != nil {
		return nil, err
	}

	mm := priv.Decrypt(opts.Ciphertext)

	if opts.Audit {
		audit.Log(audit.Entry{
			Operation: "decrypt",
			KeyID:     keyID,
			KeyFile:   opts.KeyPath,
			Modulus:   priv.N.String(),
		})
	}

	return &DecryptResult{Recovered: mm, KeyID: keyID}, nil
}

func resolvePrivateKey(keyPath string, n, d *big.Int) (rsa.PrivateKey, string, error) {
	if keyPath != "" {
		stored, err := keystore.Load(keyPath)
		if err != nil {
			return rsa.PrivateKey{}, "", err
		}
		return stored.KeyPair.PrivateKey(), stored.ID, nil
	}

	if n == nil || d == nil {
		return rsa.PrivateKey{}, "", fmt.Errorf("%w: provide a key file or both n and d", kerrors.ErrMissingKey)
	}
	if err := checkModulus(n); err != nil {
		return rsa.PrivateKey{}, "", err
	}
	if d.Sign() <= 0 {
		return rsa.PrivateKey{}, "", fmt.Errorf("%w: d=%s must be positive", kerrors.ErrInvalidKey, d)
	}

	return rsa.PrivateKey{N: new(big.Int).Set(n), D: new(big.Int).Set(d)}, "", nil
}
