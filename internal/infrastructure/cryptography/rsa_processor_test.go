//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
)

const (
	TestKeyBits64 = 64
)

func setupRSAProcessor(t *testing.T) cryptoalg.RSAProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewRSAProcessor(&config.RSASettings{
		DefaultKeyBits:    TestKeyBits64,
		MillerRabinRounds: config.DefaultMillerRabinRounds,
	}, logger)
	require.NoError(t, err)
	return processor
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(TestKeyBits64)
		assert.NoError(t, err)
		require.NotNil(t, keypair)
		assert.NoError(t, keypair.Validate())
		assert.Equal(t, TestKeyBits64, keypair.P.BitLen())
		assert.Equal(t, TestKeyBits64, keypair.Q.BitLen())
	})

	t.Run("GenerateKeysInvalidSize", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(2)
		assert.Nil(t, keypair)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKeySize)
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)

		messages := [][]byte{
			[]byte("This is a secret message"),
			[]byte(""),
			[]byte("x"),
			[]byte("line one\n\nline three\n"),
			[]byte("Xin chào thế giới, 你好"),
		}
		for _, plainText := range messages {
			encrypted, err := processor.EncryptBlocks(plainText, keypair.PublicKey())
			require.NoError(t, err)
			for _, c := range encrypted {
				assert.Equal(t, -1, c.Cmp(keypair.N))
			}

			decrypted, err := processor.DecryptBlocks(encrypted, keypair.PrivateKey())
			require.NoError(t, err)
			assert.Equal(t, string(plainText), string(decrypted))
		}
	})

	t.Run("EncryptDecryptSmallKeys", func(t *testing.T) {
		for _, bits := range []int{8, 12, 16} {
			keypair, err := processor.GenerateKeys(bits)
			require.NoError(t, err)

			plainText := []byte("Small keys still round-trip: ê 中")
			encrypted, err := processor.EncryptBlocks(plainText, keypair.PublicKey())
			require.NoError(t, err)
			decrypted, err := processor.DecryptBlocks(encrypted, keypair.PrivateKey())
			require.NoError(t, err)
			assert.Equal(t, plainText, decrypted, "bits=%d", bits)
		}
	})

	t.Run("TextbookEncryption", func(t *testing.T) {
		keypair := testutil.TextbookKeypair()

		encrypted, err := processor.EncryptBlocks([]byte("A"), keypair.PublicKey())
		require.NoError(t, err)
		assert.Equal(t, []string{"2790"}, blockStrings(encrypted))
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)
		other, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)

		plainText := []byte("for the right key only")
		encrypted, err := processor.EncryptBlocks(plainText, keypair.PublicKey())
		require.NoError(t, err)

		decrypted, err := processor.DecryptBlocks(encrypted, other.PrivateKey())
		if err == nil {
			assert.NotEqual(t, plainText, decrypted)
		} else {
			assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)
		}
	})

	t.Run("EncryptWithInvalidKey", func(t *testing.T) {
		_, err := processor.EncryptBlocks([]byte("This should fail encryption"), &cryptoalg.PublicKey{N: big.NewInt(3233)})
		assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)

		_, err = processor.EncryptBlocks([]byte("A"), &cryptoalg.PublicKey{E: big.NewInt(3), N: big.NewInt(50)})
		assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)
	})

	t.Run("DecryptOversizedBlock", func(t *testing.T) {
		keypair := testutil.TextbookKeypair()
		_, err := processor.DecryptBlocks(testutil.Ints(65, 5000), keypair.PrivateKey())
		assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)
	})

	t.Run("SignVerify", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)

		message := []byte("Message to sign")
		signature, err := processor.SignBlocks(message, keypair.PrivateKey())
		require.NoError(t, err)

		verified, err := processor.VerifyBlocks(signature, keypair.PublicKey())
		require.NoError(t, err)

		recovered, err := FromBlocks(verified)
		require.NoError(t, err)
		assert.Equal(t, message, recovered)
	})

	t.Run("EncryptTextDecrypt", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)

		texts := []string{
			"",
			"single line",
			"first\nsecond\n\n\nfifth\n",
			"\n\nleading blank lines",
		}
		for _, text := range texts {
			encrypted, err := processor.EncryptText(text, keypair.PublicKey())
			require.NoError(t, err)

			decrypted, err := processor.DecryptBlocks(encrypted, keypair.PrivateKey())
			require.NoError(t, err)
			assert.Equal(t, text, string(decrypted))
		}
	})

	t.Run("SignTextVerifyText", func(t *testing.T) {
		keypair, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)

		text := "pay 100 to alice\n\nsigned bob\n"
		signature, err := processor.SignText(text, keypair.PrivateKey())
		require.NoError(t, err)

		valid, err := processor.VerifyText(text, signature, keypair.PublicKey())
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = processor.VerifyText("pay 900 to alice\n\nsigned bob\n", signature, keypair.PublicKey())
		require.NoError(t, err)
		assert.False(t, valid)

		valid, err = processor.VerifyText(text, signature[:len(signature)-1], keypair.PublicKey())
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		privFile := filepath.Join(tmpDir, "key.pri")
		pubFile := filepath.Join(tmpDir, "key.pub")

		keypair, err := processor.GenerateKeys(TestKeyBits64)
		require.NoError(t, err)

		assert.NoError(t, processor.SavePrivateKeyToFile(keypair.PrivateKey(), privFile))
		assert.NoError(t, processor.SavePublicKeyToFile(keypair.PublicKey(), pubFile))

		readPriv, err := processor.ReadPrivateKey(privFile)
		require.NoError(t, err)
		assert.Equal(t, keypair.D.String(), readPriv.D.String())
		assert.Equal(t, keypair.N.String(), readPriv.N.String())

		readPub, err := processor.ReadPublicKey(pubFile)
		require.NoError(t, err)
		assert.Equal(t, keypair.E.String(), readPub.E.String())
		assert.Equal(t, keypair.N.String(), readPub.N.String())
	})

	t.Run("ReadTextbookKeyFiles", func(t *testing.T) {
		pubFile := testutil.CreateTempFile(t, "textbook.pub", []byte("17\n3233\n"))
		priFile := testutil.CreateTempFile(t, "textbook.pri", []byte("2753\n3233"))

		readPub, err := processor.ReadPublicKey(pubFile)
		require.NoError(t, err)
		assertBigEqual(t, testutil.TextbookE, readPub.E)

		readPriv, err := processor.ReadPrivateKey(priFile)
		require.NoError(t, err)
		assertBigEqual(t, testutil.TextbookD, readPriv.D)
	})

	t.Run("ReadMalformedKeyFiles", func(t *testing.T) {
		malformed := map[string]string{
			"letters.pub":     "seventeen\n3233\n",
			"one-value.pub":   "17\n",
			"three-value.pub": "17\n3233\n1\n",
			"negative.pub":    "-17\n3233\n",
			"too-large.pub":   "4000\n3233\n",
		}
		for name, content := range malformed {
			path := testutil.CreateTempFile(t, name, []byte(content))
			_, err := processor.ReadPublicKey(path)
			assert.ErrorIs(t, err, cryptoalg.ErrMalformedPersistedValue, name)
		}

		_, err := processor.ReadPrivateKey(filepath.Join(t.TempDir(), "missing.pri"))
		assert.Error(t, err)
	})

	t.Run("SaveInvalidKey", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.pub")
		err := processor.SavePublicKeyToFile(&cryptoalg.PublicKey{}, path)
		assert.ErrorIs(t, err, cryptoalg.ErrMissingKeyMaterial)
		assert.NoFileExists(t, path)
	})
}

func TestNewRSAProcessor_Settings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	processor, err := NewRSAProcessor(nil, logger)
	require.NoError(t, err)
	assert.NotNil(t, processor)

	_, err = NewRSAProcessor(&config.RSASettings{DefaultKeyBits: 64, MillerRabinRounds: 0}, logger)
	assert.Error(t, err)

	_, err = NewRSAProcessor(&config.RSASettings{DefaultKeyBits: 1, MillerRabinRounds: 20}, logger)
	assert.Error(t, err)
}
