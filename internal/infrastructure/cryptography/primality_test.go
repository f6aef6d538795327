//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "invalid integer literal %q", s)
	return v
}

func TestIsProbablePrime(t *testing.T) {
	tester := NewDefaultPrimalityTester()

	primes := []string{
		"2", "3", "5", "7", "101", "347", "349", "353", "7919", "104729",
		"2147483647",
		"2305843009213693951",
		"618970019642690137449562111",
	}
	for _, p := range primes {
		prime, err := tester.IsProbablePrime(mustBig(t, p))
		require.NoError(t, err)
		assert.True(t, prime, "%s should be prime", p)
	}

	composites := []string{
		"0", "1", "4", "9", "221", "341", "561", "62745", "121", "123197",
		"4951760154835678088235319297",
	}
	for _, c := range composites {
		prime, err := tester.IsProbablePrime(mustBig(t, c))
		require.NoError(t, err)
		assert.False(t, prime, "%s should be composite", c)
	}
}

func TestIsProbablePrime_NegativeAndNil(t *testing.T) {
	tester := NewDefaultPrimalityTester()

	prime, err := tester.IsProbablePrime(big.NewInt(-7))
	require.NoError(t, err)
	assert.False(t, prime)

	prime, err = tester.IsProbablePrime(nil)
	require.NoError(t, err)
	assert.False(t, prime)
}

func TestIsProbablePrime_MillerRabinOnly(t *testing.T) {
	// no trial division, so every odd candidate reaches Miller-Rabin
	tester, err := NewPrimalityTester(DefaultMillerRabinRounds, nil, nil)
	require.NoError(t, err)

	for _, p := range []int64{2, 3, 5, 7, 13, 97, 7919} {
		prime, err := tester.IsProbablePrime(big.NewInt(p))
		require.NoError(t, err)
		assert.True(t, prime, "%d should be prime", p)
	}

	for _, c := range []int64{4, 9, 15, 221, 1000} {
		prime, err := tester.IsProbablePrime(big.NewInt(c))
		require.NoError(t, err)
		assert.False(t, prime, "%d should be composite", c)
	}
}

func TestIsProbablePrime_RandomSourceFailure(t *testing.T) {
	tester, err := NewPrimalityTester(1, DefaultSmallPrimes, failingReader{})
	require.NoError(t, err)

	// decided by trial division without randomness
	prime, err := tester.IsProbablePrime(big.NewInt(347))
	require.NoError(t, err)
	assert.True(t, prime)

	_, err = tester.IsProbablePrime(big.NewInt(7919))
	assert.Error(t, err)
}

func TestNewPrimalityTester_InvalidArguments(t *testing.T) {
	_, err := NewPrimalityTester(0, DefaultSmallPrimes, nil)
	assert.Error(t, err)

	_, err = NewPrimalityTester(20, []int64{2, 1}, nil)
	assert.Error(t, err)
}

func TestDefaultSmallPrimes(t *testing.T) {
	require.Len(t, DefaultSmallPrimes, 69)
	assert.Equal(t, int64(2), DefaultSmallPrimes[0])
	assert.Equal(t, int64(347), DefaultSmallPrimes[len(DefaultSmallPrimes)-1])

	for _, p := range DefaultSmallPrimes {
		assert.True(t, big.NewInt(p).ProbablyPrime(20), "%d is not prime", p)
	}
}
