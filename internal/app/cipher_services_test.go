//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
)

func setupCipherService(t *testing.T) (keys.CipherService, *keys.KeyMeta) {
	t.Helper()

	processor := setupProcessor(t)
	keypair, err := processor.GenerateKeys(32)
	require.NoError(t, err)
	keyMeta := keys.NewKeyMeta(uuid.NewString(), "alice", 32, keypair, time.Now())

	repo := new(MockKeyRepository)
	repo.On("GetByID", mock.Anything, keyMeta.ID).Return(keyMeta, nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, keys.ErrKeyNotFound)

	service, err := NewCipherService(repo, processor, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return service, keyMeta
}

func TestCipherService_EncryptDecrypt(t *testing.T) {
	service, keyMeta := setupCipherService(t)
	text := "attack at dawn\n\nbring coffee"

	cipher, err := service.Encrypt(context.Background(), keyMeta.ID, text)
	require.NoError(t, err)
	require.NotEmpty(t, cipher)

	plain, err := service.Decrypt(context.Background(), keyMeta.ID, cipher)
	require.NoError(t, err)
	assert.Equal(t, text, plain)
}

func TestCipherService_SignVerify(t *testing.T) {
	service, keyMeta := setupCipherService(t)
	text := "I owe you nothing"

	signature, err := service.Sign(context.Background(), keyMeta.ID, text)
	require.NoError(t, err)

	valid, err := service.Verify(context.Background(), keyMeta.ID, text, signature)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = service.Verify(context.Background(), keyMeta.ID, "I owe you everything", signature)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestCipherService_UnknownKey(t *testing.T) {
	service, _ := setupCipherService(t)
	ctx := context.Background()

	_, err := service.Encrypt(ctx, "missing", "x")
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)

	_, err = service.Decrypt(ctx, "missing", testutil.Ints(1))
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)

	_, err = service.Sign(ctx, "missing", "x")
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)

	_, err = service.Verify(ctx, "missing", "x", testutil.Ints(1))
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestCipherService_BlockTooLarge(t *testing.T) {
	service, keyMeta := setupCipherService(t)

	pub, err := keyMeta.PublicKey()
	require.NoError(t, err)

	_, err = service.Decrypt(context.Background(), keyMeta.ID, []cryptoalg.Block{pub.N})
	assert.ErrorIs(t, err, cryptoalg.ErrBlockTooLarge)
}
