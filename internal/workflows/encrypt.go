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

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Message is the integer to encrypt, 0 <= m < n.
	Message *big.Int

	// KeyPath loads the public key from a key file. Takes precedence over N and E.
	KeyPath string

	// N and E give the public key explicitly.
	N, E *big.Int

	// Audit appends an entry to the operation log.
	Audit bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	Ciphertext *big.Int
	PublicKey  rsa.PublicKey

	// KeyID is the key file's ID when KeyPath was used.
	KeyID string
}

// Encrypt encrypts a single integer under a public key.
//
// Returns ErrMissingInput if Message is nil.
// Returns ErrMissingKey if neither KeyPath nor both N and E are set.
// Returns ErrInvalidKey if N or E are out of range.
// Returns ErrKeyFileNotFound or ErrInvalidKeyFile if the key file is unusable.
// Returns ErrMessageTooLarge if the message is not smaller than n.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Message == nil {
		return nil, fmt.Errorf("%w: message m", kerrors.ErrMissingInput)
	}

	pub, keyID, err := resolvePublicKey(opts.KeyPath, opts.N, opts.E)
	if err != nil {
		return nil, err
	}

	c, err := pub.Encrypt(opts.Message)
	if err != nil {
		return nil, err
	}

	if opts.Audit {
		audit.Log(audit.Entry{
			Operation: "encrypt",
			KeyID:     keyID,
			KeyFile:   opts.KeyPath,
			Modulus:   pub.N.String(),
			Exponent:  pub.E.String(),
		})
	}

	return &EncryptResult{Ciphertext: c, PublicKey: pub, KeyID: keyID}, nil
}

func resolvePublicKey(keyPath string, n, e *big.Int) (rsa.PublicKey, string, error) {
	if keyPath != "" {
		stored, err := keystore.Load(keyPath)
		if err != nil {
			return rsa.PublicKey{}, "", err
		}
		return stored.KeyPair.PublicKey(), stored.ID, nil
	}

	if n == nil || e == nil {
		return rsa.PublicKey{}, "", fmt.Errorf("%w: provide a key file or both n and e", kerrors.ErrMissingKey)
	}
	if err := checkModulus(n); err != nil {
		return rsa.PublicKey{}, "", err
	}
	if e.Sign() <= 0 {
		return rsa.PublicKey{}, "", fmt.Errorf("%w: e=%s must be positive", kerrors.ErrInvalidKey, e)
	}

	return rsa.PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)}, "", nil
}

func checkModulus(n *big.Int) error {
	if n.Cmp(big.NewInt(1)) <= 0 {
		return fmt.Errorf("%w: n=%s must be greater than 1", kerrors.ErrInvalidKey, n)
	}
	return nil
}
