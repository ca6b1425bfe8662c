package rsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/numtheory"
)

// DefaultMaxAttempts bounds the public exponent search.
const DefaultMaxAttempts = 100000

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// KeyPair holds every value derived from a prime pair. It is immutable;
// accessors return copies.
type KeyPair struct {
	p, q     *big.Int
	n, phi   *big.Int
	e, d     *big.Int
	attempts int
}

// PublicKey is the (n, e) half of a key pair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the (n, d) half of a key pair.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// P, Q, N, Phi, E and D return copies of the key pair's values.
func (kp *KeyPair) P() *big.Int   { return new(big.Int).Set(kp.p) }
func (kp *KeyPair) Q() *big.Int   { return new(big.Int).Set(kp.q) }
func (kp *KeyPair) N() *big.Int   { return new(big.Int).Set(kp.n) }
func (kp *KeyPair) Phi() *big.Int { return new(big.Int).Set(kp.phi) }
func (kp *KeyPair) E() *big.Int   { return new(big.Int).Set(kp.e) }
func (kp *KeyPair) D() *big.Int   { return new(big.Int).Set(kp.d) }

// Attempts returns how many candidates the exponent search drew. It is 0 for
// key pairs built with FromExponent.
func (kp *KeyPair) Attempts() int { return kp.attempts }

// PublicKey returns a copy of (n, e).
func (kp *KeyPair) PublicKey() PublicKey {
	return PublicKey{N: kp.N(), E: kp.E()}
}

// PrivateKey returns a copy of (n, d).
func (kp *KeyPair) PrivateKey() PrivateKey {
	return PrivateKey{N: kp.N(), D: kp.D()}
}

type options struct {
	maxAttempts int
}

// Option configures Generate.
type Option func(*options)

// WithMaxAttempts caps the number of exponent candidates drawn before
// Generate gives up. Values below 1 keep the default.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// ValidatePrimes checks that p and q are distinct primes whose totient leaves
// room for a public exponent. The only distinct prime pair that fails the
// last check is {2, 3}, where phi = 2.
func ValidatePrimes(p, q *big.Int) error {
	if !numtheory.IsPrime(p) {
		return fmt.Errorf("%w: p=%s is not prime", kerrors.ErrInvalidPrimes, p)
	}
	if !numtheory.IsPrime(q) {
		return fmt.Errorf("%w: q=%s is not prime", kerrors.ErrInvalidPrimes, q)
	}
	if p.Cmp(q) == 0 {
		return fmt.Errorf("%w: p and q must differ", kerrors.ErrInvalidPrimes)
	}
	if _, phi := modulusAndTotient(p, q); phi.Cmp(two) <= 0 {
		return fmt.Errorf("%w: phi=%s leaves no public exponent in (1, phi)", kerrors.ErrInvalidPrimes, phi)
	}
	return nil
}

// Generate derives a key pair from p and q with a randomly chosen public
// exponent. random defaults to crypto/rand.Reader when nil; Generate is safe
// for concurrent use whenever random is.
func Generate(p, q *big.Int, random io.Reader, opts ...Option) (*KeyPair, error) {
	if err := ValidatePrimes(p, q); err != nil {
		return nil, err
	}

	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if random == nil {
		random = rand.Reader
	}

	n, phi := modulusAndTotient(p, q)

	e, attempts, err := pickPublicExponent(phi, random, o.maxAttempts)
	if err != nil {
		return nil, err
	}

	d, err := numtheory.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("%w: e=%s was drawn coprime to phi=%s: %w", kerrors.ErrInternal, e, phi, err)
	}

	return &KeyPair{
		p:        new(big.Int).Set(p),
		q:        new(big.Int).Set(q),
		n:        n,
		phi:      phi,
		e:        e,
		d:        d,
		attempts: attempts,
	}, nil
}

// FromExponent derives a key pair from p and q around a caller-chosen public
// exponent, which must lie in (1, phi) and be coprime to phi.
func FromExponent(p, q, e *big.Int) (*KeyPair, error) {
	if err := ValidatePrimes(p, q); err != nil {
		return nil, err
	}

	n, phi := modulusAndTotient(p, q)

	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return nil, fmt.Errorf("%w: e=%s must satisfy 1 < e < %s", kerrors.ErrInvalidExponent, e, phi)
	}
	if g := numtheory.GCD(e, phi); g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: e=%s shares factor %s with phi=%s", kerrors.ErrInvalidExponent, e, g, phi)
	}

	d, err := numtheory.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInternal, err)
	}

	return &KeyPair{
		p:   new(big.Int).Set(p),
		q:   new(big.Int).Set(q),
		n:   n,
		phi: phi,
		e:   new(big.Int).Set(e),
		d:   d,
	}, nil
}

func modulusAndTotient(p, q *big.Int) (n, phi *big.Int) {
	n = new(big.Int).Mul(p, q)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	phi = pm1.Mul(pm1, qm1)
	return n, phi
}

// pickPublicExponent draws e uniformly from [2, phi) until gcd(e, phi) = 1.
// phi must be greater than 2.
func pickPublicExponent(phi *big.Int, random io.Reader, maxAttempts int) (*big.Int, int, error) {
	span := new(big.Int).Sub(phi, two)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := rand.Int(random, span)
		if err != nil {
			return nil, attempt, fmt.Errorf("drawing public exponent: %w", err)
		}
		candidate.Add(candidate, two)

		if numtheory.GCD(candidate, phi).Cmp(one) == 0 {
			return candidate, attempt, nil
		}
	}

	return nil, maxAttempts, fmt.Errorf("%w: no exponent coprime to phi=%s after %d attempts",
		kerrors.ErrExponentSearchExhausted, phi, maxAttempts)
}
