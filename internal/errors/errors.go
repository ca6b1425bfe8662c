package errors

import "errors"

// Arithmetic errors are raised by the RSA core before or during derivation.
var (
	// ErrInvalidPrimes indicates p or q is not prime, p equals q, or the pair is too small to carry a key.
	ErrInvalidPrimes = errors.New("invalid prime pair")

	// ErrMessageTooLarge indicates the message is not strictly smaller than the modulus.
	ErrMessageTooLarge = errors.New("message must be smaller than modulus n")

	// ErrNegativeMessage indicates the message is below zero.
	ErrNegativeMessage = errors.New("message must not be negative")

	// ErrNoInverse indicates e has no inverse modulo phi because they share a factor.
	ErrNoInverse = errors.New("no modular inverse exists")

	// ErrInvalidExponent indicates a caller-chosen public exponent is out of range or not coprime to phi.
	ErrInvalidExponent = errors.New("invalid public exponent")

	// ErrExponentSearchExhausted indicates no coprime public exponent was drawn within the attempt limit.
	ErrExponentSearchExhausted = errors.New("public exponent search exhausted")

	// ErrInternal indicates an invariant of key derivation did not hold.
	ErrInternal = errors.New("internal error")
)

// Input errors are raised by the interactive boundary, never by the core.
var (
	// ErrNonIntegerInput indicates the entered text is not an integer.
	ErrNonIntegerInput = errors.New("only integers allowed")

	// ErrRetriesExhausted indicates the user gave up or ran out of attempts.
	ErrRetriesExhausted = errors.New("too many invalid attempts")

	// ErrMissingInput indicates a value was neither preset nor available from a prompt.
	ErrMissingInput = errors.New("value not supplied")

	// ErrMissingKey indicates neither a key file nor explicit key values were supplied.
	ErrMissingKey = errors.New("no key supplied")

	// ErrInvalidKey indicates explicitly supplied key values are out of range.
	ErrInvalidKey = errors.New("invalid key values")

	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// File errors indicate issues with key files, configuration or the operation log.
var (
	// ErrKeyFileNotFound indicates the key file could not be located.
	ErrKeyFileNotFound = errors.New("key file not found")

	// ErrKeyFileExists indicates a key file would be overwritten.
	ErrKeyFileExists = errors.New("key file already exists")

	// ErrInvalidKeyFile indicates the key file is malformed or its values are inconsistent.
	ErrInvalidKeyFile = errors.New("key file is invalid")

	// ErrInvalidConfig indicates the configuration file is malformed or out of range.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrNoLogFound indicates no operation log exists yet.
	ErrNoLogFound = errors.New("no operation log found")
)
