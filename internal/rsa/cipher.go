package rsa

import (
	"fmt"
	"math/big"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/numtheory"
)

// Encrypt returns m^e mod n.
//
// m must satisfy 0 <= m < n. A message at or above the modulus would
// decrypt to m mod n instead of m, so it is rejected with ErrMessageTooLarge.
func Encrypt(m, e, n *big.Int) (*big.Int, error) {
	if m.Sign() < 0 {
		return nil, fmt.Errorf("%w: m=%s", kerrors.ErrNegativeMessage, m)
	}
	if m.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: m=%s, n=%s", kerrors.ErrMessageTooLarge, m, n)
	}
	return numtheory.ModPow(m, e, n), nil
}

// Decrypt returns c^d mod n.
func Decrypt(c, d, n *big.Int) *big.Int {
	return numtheory.ModPow(c, d, n)
}

// Encrypt encrypts m under the public key.
func (k PublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	return Encrypt(m, k.E, k.N)
}

// Decrypt decrypts c under the private key.
func (k PrivateKey) Decrypt(c *big.Int) *big.Int {
	return Decrypt(c, k.D, k.N)
}

// Verify reports whether the recovered message equals the original.
func Verify(original, recovered *big.Int) bool {
	if original == nil || recovered == nil {
		return false
	}
	return original.Cmp(recovered) == 0
}
