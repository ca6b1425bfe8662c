package numtheory

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsPrime reports whether n is prime. Values below 2 are not prime.
//
// Trial division stops at the integer square root of n; no divisor above it
// can exist without a matching one below.
func IsPrime(n *big.Int) bool {
	if n == nil || n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	rem := new(big.Int)
	square := new(big.Int)
	for i := big.NewInt(3); square.Mul(i, i).Cmp(n) <= 0; i.Add(i, two) {
		if rem.Rem(n, i).Sign() == 0 {
			return false
		}
	}
	return true
}
