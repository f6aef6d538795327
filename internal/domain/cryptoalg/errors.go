package cryptoalg

import "errors"

var (
	// ErrInvalidKeySize is returned when the requested bit length cannot
	// yield two distinct odd primes and a usable public exponent.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrNoInverseExists is returned when gcd(e, phi) != 1.
	ErrNoInverseExists = errors.New("no modular inverse exists")

	// ErrBlockTooLarge is returned when a block is not strictly smaller than the modulus,
	// or when a single character of a message already encodes to a value >= n.
	ErrBlockTooLarge = errors.New("block is not smaller than the modulus")

	// ErrInvalidBlock is returned for nil or negative blocks.
	ErrInvalidBlock = errors.New("invalid block")

	// ErrMalformedPersistedValue is returned when a persisted integer cannot be parsed.
	ErrMalformedPersistedValue = errors.New("malformed persisted value")

	// ErrMissingKeyMaterial is returned when an engine is asked to use the half of the key it does not hold.
	ErrMissingKeyMaterial = errors.New("missing key material")

	// ErrAttemptsExhausted is returned when a bounded probabilistic search gives up.
	ErrAttemptsExhausted = errors.New("attempt limit exhausted")

	// ErrInvalidModulus is returned for a modulus <= 0 or a negative exponent.
	ErrInvalidModulus = errors.New("invalid modulus or exponent")
)
