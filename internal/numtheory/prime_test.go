package numtheory

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// isPrimeNaive checks every candidate divisor in [2, n).
func isPrimeNaive(n int64) bool {
	if n <= 1 {
		return false
	}
	for i := int64(2); i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{17, true},
		{25, false},
		{53, true},
		{61, true},
		{561, false},
		{7917, false},
		{7919, true},
		{1000003, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrime(big.NewInt(tt.n)), "IsPrime(%d)", tt.n)
	}
}

func TestIsPrimeNil(t *testing.T) {
	assert.False(t, IsPrime(nil))
}

func TestIsPrimeMatchesNaiveDefinition(t *testing.T) {
	for n := int64(-5); n <= 3000; n++ {
		if IsPrime(big.NewInt(n)) != isPrimeNaive(n) {
			t.Fatalf("IsPrime(%d) disagrees with trial division over [2, n)", n)
		}
	}
}

func TestIsPrimeLargeValues(t *testing.T) {
	// 2^31 - 1 is a Mersenne prime; 2^31 + 1 is divisible by 3.
	mersenne := new(big.Int).Sub(new(big.Int).Lsh(one, 31), one)
	assert.True(t, IsPrime(mersenne))

	notPrime := new(big.Int).Add(new(big.Int).Lsh(one, 31), one)
	assert.False(t, IsPrime(notPrime))

	// Product of two primes near 10^5 has no small factor.
	semiprime := new(big.Int).Mul(big.NewInt(99991), big.NewInt(100003))
	assert.False(t, IsPrime(semiprime))
}

func TestIsPrimeDoesNotModifyArgument(t *testing.T) {
	n := big.NewInt(7919)
	IsPrime(n)
	assert.Equal(t, int64(7919), n.Int64())
}
