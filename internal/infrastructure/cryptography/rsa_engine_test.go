//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
)

func setupTextbookEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(testutil.TextbookKeypair())
	require.NoError(t, err)
	return engine
}

func TestEngine_EncryptDecrypt(t *testing.T) {
	engine := setupTextbookEngine(t)

	cipher, err := engine.Encrypt(big.NewInt(65))
	require.NoError(t, err)
	assertBigEqual(t, 2790, cipher)

	plain, err := engine.Decrypt(cipher)
	require.NoError(t, err)
	assertBigEqual(t, 65, plain)

	assertBigEqual(t, testutil.TextbookN, engine.Modulus())
}

func TestEngine_RoundTripEveryBlock(t *testing.T) {
	engine := setupTextbookEngine(t)

	for m := int64(0); m < testutil.TextbookN; m += 7 {
		cipher, err := engine.Encrypt(big.NewInt(m))
		require.NoError(t, err)
		plain, err := engine.Decrypt(cipher)
		require.NoError(t, err)
		assertBigEqual(t, m, plain)

		signature, err := engine.Sign(big.NewInt(m))
		require.NoError(t, err)
		verified, err := engine.Verify(signature)
		require.NoError(t, err)
		assertBigEqual(t, m, verified)
	}
}

func TestEngine_RejectsMalformedBlocks(t *testing.T) {
	engine := setupTextbookEngine(t)

	_, err := engine.Encrypt(big.NewInt(testutil.TextbookN))
	assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)

	_, err = engine.Decrypt(big.NewInt(testutil.TextbookN + 1))
	assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)

	_, err = engine.Sign(big.NewInt(-1))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidBlock)

	_, err = engine.Verify(nil)
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidBlock)
}

func TestEngine_MissingKeyMaterial(t *testing.T) {
	keypair := testutil.TextbookKeypair()

	public, err := NewPublicEngine(keypair.PublicKey())
	require.NoError(t, err)
	_, err = public.Decrypt(big.NewInt(65))
	assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)
	_, err = public.Sign(big.NewInt(65))
	assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)

	private, err := NewPrivateEngine(keypair.PrivateKey())
	require.NoError(t, err)
	_, err = private.Encrypt(big.NewInt(65))
	assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)
	_, err = private.Verify(big.NewInt(65))
	assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)

	_, err = NewPublicEngine(nil)
	assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)
	_, err = NewPrivateEngine(&cryptoalg.PrivateKey{N: big.NewInt(testutil.TextbookN)})
	assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)
}

func TestEngine_InvalidKeypair(t *testing.T) {
	keypair := testutil.TextbookKeypair()
	keypair.D = big.NewInt(2752)

	_, err := NewEngine(keypair)
	assert.Error(t, err)
}

func TestEngine_AllPreservesOrder(t *testing.T) {
	engine := setupTextbookEngine(t)
	message := testutil.Ints(72, 101, 108, 108, 111)

	cipher, err := engine.EncryptAll(message)
	require.NoError(t, err)
	require.Len(t, cipher, len(message))

	plain, err := engine.DecryptAll(cipher)
	require.NoError(t, err)
	assert.Equal(t, blockStrings(message), blockStrings(plain))

	signature, err := engine.SignAll(message)
	require.NoError(t, err)
	verified, err := engine.VerifyAll(signature)
	require.NoError(t, err)
	assert.Equal(t, blockStrings(message), blockStrings(verified))
}

func TestEngine_AllFailsWithoutPartialResult(t *testing.T) {
	engine := setupTextbookEngine(t)

	cipher, err := engine.EncryptAll(testutil.Ints(65, testutil.TextbookN, 66))
	assert.Nil(t, cipher)
	assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)
	assert.Contains(t, err.Error(), "block 1")

	empty, err := engine.EncryptAll(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
