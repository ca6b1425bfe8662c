// Package numtheory implements the number-theoretic primitives toyrsa is
// built on: primality testing, greatest common divisor, modular inverse and
// modular exponentiation, all over arbitrary-precision integers.
//
// Every function is pure and safe for concurrent use. Arguments are never
// modified; results are always freshly allocated.
//
// IsPrime and ModInverse use faster algorithms than the textbook definitions
// (trial division up to the square root, extended Euclid) but return exactly
// the same values. The textbook versions live in this package's tests.
package numtheory
