// Package keystore reads and writes toyrsa key pairs as TOML files.
//
// Integers are stored as decimal strings so values of any size survive the
// round trip. A file holds the full key pair, private exponent included, and
// is written with mode 0600.
//
// Load never trusts the derived values in a file: it rebuilds the key pair
// from p, q and e and rejects the file with ErrInvalidKeyFile if n, phi or d
// disagree.
package keystore
