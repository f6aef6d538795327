package cryptoalg

import (
	"fmt"
	"math/big"
)

// Bounds on the bit length of each generated prime.
// Three bits is the smallest size with two distinct odd primes (5 and 7).
const (
	MinKeyBits = 3
	MaxKeyBits = 8192
)

// Block is one integer unit of plaintext, ciphertext or signature.
// A well-formed block satisfies 0 <= block < n.
type Block = *big.Int

var bigOne = big.NewInt(1)

// PublicKey is the (e, n) half of a keypair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the (d, n) half of a keypair.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// Keypair is the full key material produced by key generation.
// It is never mutated after construction.
type Keypair struct {
	P   *big.Int
	Q   *big.Int
	N   *big.Int
	Phi *big.Int
	E   *big.Int
	D   *big.Int
}

// PublicKey returns the public half (e, n).
func (k *Keypair) PublicKey() *PublicKey {
	return &PublicKey{E: new(big.Int).Set(k.E), N: new(big.Int).Set(k.N)}
}

// PrivateKey returns the private half (d, n).
func (k *Keypair) PrivateKey() *PrivateKey {
	return &PrivateKey{D: new(big.Int).Set(k.D), N: new(big.Int).Set(k.N)}
}

// Validate checks n = p*q, phi = (p-1)(q-1), p != q, 0 < e,d < n and e*d = 1 (mod phi).
func (k *Keypair) Validate() error {
	if k == nil || k.P == nil || k.Q == nil || k.N == nil || k.Phi == nil || k.E == nil || k.D == nil {
		return fmt.Errorf("keypair is incomplete")
	}
	if k.P.Cmp(k.Q) == 0 {
		return fmt.Errorf("p and q must differ")
	}
	if new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		return fmt.Errorf("n is not p*q")
	}
	pMinusOne := new(big.Int).Sub(k.P, bigOne)
	qMinusOne := new(big.Int).Sub(k.Q, bigOne)
	if new(big.Int).Mul(pMinusOne, qMinusOne).Cmp(k.Phi) != 0 {
		return fmt.Errorf("phi is not (p-1)*(q-1)")
	}
	if !inOpenRange(k.E, k.N) || !inOpenRange(k.D, k.N) {
		return fmt.Errorf("exponents must satisfy 0 < e,d < n")
	}
	ed := new(big.Int).Mul(k.E, k.D)
	if ed.Mod(ed, k.Phi).Cmp(bigOne) != 0 {
		return fmt.Errorf("e*d mod phi != 1: %w", ErrNoInverseExists)
	}
	return nil
}

// Validate checks that the public key is usable: n > 1 and 0 < e < n.
func (k *PublicKey) Validate() error {
	if k == nil || k.E == nil || k.N == nil {
		return fmt.Errorf("public key is incomplete: %w", ErrMissingKeyMaterial)
	}
	if k.N.Cmp(bigOne) <= 0 || !inOpenRange(k.E, k.N) {
		return fmt.Errorf("public key out of range: %w", ErrMalformedPersistedValue)
	}
	return nil
}

// Validate checks that the private key is usable: n > 1 and 0 < d < n.
func (k *PrivateKey) Validate() error {
	if k == nil || k.D == nil || k.N == nil {
		return fmt.Errorf("private key is incomplete: %w", ErrMissingKeyMaterial)
	}
	if k.N.Cmp(bigOne) <= 0 || !inOpenRange(k.D, k.N) {
		return fmt.Errorf("private key out of range: %w", ErrMalformedPersistedValue)
	}
	return nil
}

// CheckBlock reports whether b is a well-formed block for modulus n.
func CheckBlock(b Block, n *big.Int) error {
	if b == nil || b.Sign() < 0 {
		return ErrInvalidBlock
	}
	if b.Cmp(n) >= 0 {
		return fmt.Errorf("%w: %s >= %s", ErrBlockTooLarge, b.String(), n.String())
	}
	return nil
}

func inOpenRange(x, n *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}
