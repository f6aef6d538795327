package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
)

// KeyGenerator draws two distinct probable primes of a requested bit length
// and derives the remaining key material from them.
type KeyGenerator struct {
	tester      *PrimalityTester
	random      io.Reader
	maxAttempts int
	logger      logger.Logger
}

// NewKeyGenerator creates a generator. maxAttempts bounds the candidate draws
// per prime; 0 disables the bound. A nil random source means crypto/rand.
func NewKeyGenerator(tester *PrimalityTester, random io.Reader, maxAttempts int, logger logger.Logger) (*KeyGenerator, error) {
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts cannot be negative, got %d", maxAttempts)
	}
	if random == nil {
		random = rand.Reader
	}

	return &KeyGenerator{
		tester:      tester,
		random:      random,
		maxAttempts: maxAttempts,
		logger:      logger,
	}, nil
}

// Generate returns a keypair whose primes p and q each have exactly bitLength bits.
func (g *KeyGenerator) Generate(bitLength int) (*cryptoalg.Keypair, error) {
	if bitLength < cryptoalg.MinKeyBits || bitLength > cryptoalg.MaxKeyBits {
		return nil, fmt.Errorf("%w: %d bits (must be between %d and %d)",
			cryptoalg.ErrInvalidKeySize, bitLength, cryptoalg.MinKeyBits, cryptoalg.MaxKeyBits)
	}

	p, err := g.generatePrime(bitLength, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate p: %w", err)
	}
	q, err := g.generatePrime(bitLength, p)
	if err != nil {
		return nil, fmt.Errorf("failed to generate q: %w", err)
	}

	pMinusOne := new(big.Int).Sub(p, bigOne)
	qMinusOne := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(pMinusOne, qMinusOne)

	keypair, err := NewKeypair(p, q, ChoosePublicExponent(phi))
	if err != nil {
		return nil, err
	}

	if g.logger != nil {
		g.logger.Debug("Generated keypair with ", keypair.N.BitLen(), "-bit modulus and e=", keypair.E)
	}
	return keypair, nil
}

// NewKeypair derives n, phi and d from the primes p, q and the public exponent e.
func NewKeypair(p, q, e *big.Int) (*cryptoalg.Keypair, error) {
	if p == nil || q == nil || e == nil {
		return nil, fmt.Errorf("p, q and e are required")
	}
	if p.Cmp(bigOne) <= 0 || q.Cmp(bigOne) <= 0 || p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: p and q must be distinct and greater than 1", cryptoalg.ErrInvalidKeySize)
	}

	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, bigOne)
	qMinusOne := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(pMinusOne, qMinusOne)

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	keypair := &cryptoalg.Keypair{
		P:   new(big.Int).Set(p),
		Q:   new(big.Int).Set(q),
		N:   n,
		Phi: phi,
		E:   new(big.Int).Set(e),
		D:   d,
	}
	if err := keypair.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidKeySize, err)
	}
	return keypair, nil
}

// generatePrime draws odd full-length candidates until one passes the
// primality test and differs from exclude.
func (g *KeyGenerator) generatePrime(bitLength int, exclude *big.Int) (*big.Int, error) {
	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		candidate, err := g.randomCandidate(bitLength)
		if err != nil {
			return nil, err
		}
		if exclude != nil && candidate.Cmp(exclude) == 0 {
			continue
		}

		prime, err := g.tester.IsProbablePrime(candidate)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime after %d candidates",
		cryptoalg.ErrAttemptsExhausted, bitLength, g.maxAttempts)
}

// randomCandidate returns a random odd integer with exactly bitLength bits.
func (g *KeyGenerator) randomCandidate(bitLength int) (*big.Int, error) {
	buf := make([]byte, (bitLength+7)/8)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	excess := uint(len(buf)*8 - bitLength)
	buf[0] &= 0xFF >> excess
	buf[0] |= 0x80 >> excess
	buf[len(buf)-1] |= 1

	return new(big.Int).SetBytes(buf), nil
}
