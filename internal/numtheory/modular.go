package numtheory

import (
	"fmt"
	"math/big"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
)

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(a, 0) is a. Both arguments must be non-negative.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	return x
}

// ModInverse returns the unique d in [1, phi) with (e*d) mod phi = 1.
//
// It fails with ErrNoInverse when gcd(e, phi) != 1 or phi <= 1.
func ModInverse(e, phi *big.Int) (*big.Int, error) {
	if phi.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: modulus %s must be greater than 1", kerrors.ErrNoInverse, phi)
	}

	// Extended Euclid on (e mod phi, phi); oldS tracks the Bezout
	// coefficient of e.
	oldR := new(big.Int).Mod(e, phi)
	r := new(big.Int).Set(phi)
	oldS := big.NewInt(1)
	s := big.NewInt(0)
	q := new(big.Int)

	for r.Sign() != 0 {
		q.Quo(oldR, r)

		nextR := new(big.Int).Mul(q, r)
		nextR.Sub(oldR, nextR)
		oldR, r = r, nextR

		nextS := new(big.Int).Mul(q, s)
		nextS.Sub(oldS, nextS)
		oldS, s = s, nextS
	}

	if oldR.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", kerrors.ErrNoInverse, e, phi, oldR)
	}

	return oldS.Mod(oldS, phi), nil
}

// ModPow returns base^exponent mod modulus by square-and-multiply, reducing
// after every step so intermediate values stay below modulus^2.
//
// modulus must be positive and exponent non-negative; ModPow panics
// otherwise. A negative base is reduced into [0, modulus) first.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("numtheory: modulus must be positive")
	}
	if exponent.Sign() < 0 {
		panic("numtheory: exponent must not be negative")
	}

	result := new(big.Int).Mod(one, modulus)
	b := new(big.Int).Mod(base, modulus)

	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}

	return result
}
