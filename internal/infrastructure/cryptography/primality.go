package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// DefaultMillerRabinRounds bounds the false-positive rate by 4^-20.
const DefaultMillerRabinRounds = 20

// DefaultSmallPrimes are the 69 primes from 2 to 347 used for trial division.
var DefaultSmallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307, 311, 313, 317,
	331, 337, 347,
}

var bigFour = big.NewInt(4)

// PrimalityTester filters candidates by trial division against a small-prime
// table, then runs a configurable number of Miller-Rabin rounds.
type PrimalityTester struct {
	rounds      int
	smallPrimes []*big.Int
	random      io.Reader
}

// NewPrimalityTester creates a tester. A nil random source means crypto/rand.
func NewPrimalityTester(rounds int, smallPrimes []int64, random io.Reader) (*PrimalityTester, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("miller-rabin rounds must be at least 1, got %d", rounds)
	}
	if random == nil {
		random = rand.Reader
	}

	table := make([]*big.Int, 0, len(smallPrimes))
	for _, p := range smallPrimes {
		if p < 2 {
			return nil, fmt.Errorf("small prime table contains %d", p)
		}
		table = append(table, big.NewInt(p))
	}

	return &PrimalityTester{
		rounds:      rounds,
		smallPrimes: table,
		random:      random,
	}, nil
}

// NewDefaultPrimalityTester uses the default table, 20 rounds and crypto/rand.
func NewDefaultPrimalityTester() *PrimalityTester {
	tester, _ := NewPrimalityTester(DefaultMillerRabinRounds, DefaultSmallPrimes, nil)
	return tester
}

// IsProbablePrime reports whether candidate is prime with overwhelming probability.
// An error is only returned when the random source fails.
func (t *PrimalityTester) IsProbablePrime(candidate *big.Int) (bool, error) {
	if candidate == nil || candidate.Cmp(bigTwo) < 0 {
		return false, nil
	}

	if prime, decided := t.trialDivision(candidate); decided {
		return prime, nil
	}

	if candidate.Cmp(bigFour) < 0 {
		return true, nil
	}
	if candidate.Bit(0) == 0 {
		return false, nil
	}

	return t.millerRabin(candidate)
}

// trialDivision returns decided=true when the table settles the question:
// the candidate is a table prime, or a table prime divides it.
func (t *PrimalityTester) trialDivision(candidate *big.Int) (prime bool, decided bool) {
	rem := new(big.Int)
	for _, p := range t.smallPrimes {
		if candidate.Cmp(p) == 0 {
			return true, true
		}
		if rem.Mod(candidate, p).Sign() == 0 {
			return false, true
		}
	}
	return false, false
}

func (t *PrimalityTester) millerRabin(n *big.Int) (bool, error) {
	nMinusOne := new(big.Int).Sub(n, bigOne)

	// n-1 = 2^s * d with d odd
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	if new(big.Int).Lsh(d, uint(s)).Cmp(nMinusOne) != 0 {
		return false, nil
	}

	for round := 0; round < t.rounds; round++ {
		a, err := t.randomBase(n)
		if err != nil {
			return false, err
		}
		composite, err := isWitness(a, d, n, nMinusOne, s)
		if err != nil {
			return false, err
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// randomBase draws a in [2, n-2] from a range of about half the bit length of n.
// n must be odd and at least 5.
func (t *PrimalityTester) randomBase(n *big.Int) (*big.Int, error) {
	bits := n.BitLen() / 2
	if bits < 2 {
		bits = 2
	}
	limit := new(big.Int).Lsh(bigOne, uint(bits))

	r, err := rand.Int(t.random, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to draw miller-rabin base: %w", err)
	}

	span := new(big.Int).Sub(n, big.NewInt(3))
	r.Mod(r, span)
	return r.Add(r, bigTwo), nil
}

// isWitness reports whether a proves n composite: a^d != 1 and
// a^(2^i * d) != n-1 for every i in [0, s).
func isWitness(a, d, n, nMinusOne *big.Int, s int) (bool, error) {
	x, err := ModExp(a, d, n)
	if err != nil {
		return false, err
	}
	if x.Cmp(bigOne) == 0 {
		return false, nil
	}
	for i := 0; i < s; i++ {
		if x.Cmp(nMinusOne) == 0 {
			return false, nil
		}
		x.Mul(x, x)
		x.Mod(x, n)
	}
	return true, nil
}
