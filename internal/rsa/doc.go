// Package rsa implements textbook RSA on arbitrary-precision integers: key
// pair derivation from two primes, encryption and decryption of a single
// integer message, and round-trip verification.
//
// This is a teaching implementation. It uses no padding, makes no attempt at
// constant-time arithmetic and accepts primes of any size, so it must not be
// used to protect real data.
//
// # Key Generation
//
//	kp, err := rsa.Generate(big.NewInt(61), big.NewInt(53), rand.Reader)
//
// Generate draws the public exponent e uniformly from [2, phi) until it is
// coprime to phi, then derives d as the inverse of e modulo phi. Use
// FromExponent to build a key pair around a fixed exponent instead.
//
// # Encryption
//
//	c, err := rsa.Encrypt(m, kp.E(), kp.N())
//	mm := rsa.Decrypt(c, kp.D(), kp.N())
//	ok := rsa.Verify(m, mm)
//
// Messages must satisfy 0 <= m < n. Encrypt rejects anything else rather than
// producing a ciphertext that cannot round-trip.
package rsa
