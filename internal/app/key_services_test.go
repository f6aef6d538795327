//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/cryptography"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
)

const testDefaultBits = 16

func setupProcessor(t *testing.T) cryptoalg.RSAProcessor {
	t.Helper()
	processor, err := cryptography.NewRSAProcessor(&config.RSASettings{
		DefaultKeyBits:    testDefaultBits,
		MillerRabinRounds: config.DefaultMillerRabinRounds,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return processor
}

func setupKeyService(t *testing.T) (keys.KeyService, *MockKeyRepository) {
	t.Helper()
	repo := new(MockKeyRepository)
	service, err := NewKeyService(repo, setupProcessor(t), testDefaultBits, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return service, repo
}

func TestKeyService_Generate(t *testing.T) {
	service, repo := setupKeyService(t)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*keys.KeyMeta")).Return(nil)

	keyMeta, err := service.Generate(context.Background(), 32, "alice")
	require.NoError(t, err)
	require.NoError(t, keyMeta.Validate())
	assert.Equal(t, 32, keyMeta.Bits)
	assert.Equal(t, "alice", keyMeta.Label)

	pub, err := keyMeta.PublicKey()
	require.NoError(t, err)
	priv, err := keyMeta.PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, pub.N.String(), priv.N.String())

	repo.AssertCalled(t, "Create", mock.Anything, keyMeta)
}

func TestKeyService_GenerateDefaultBits(t *testing.T) {
	service, repo := setupKeyService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	keyMeta, err := service.Generate(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, testDefaultBits, keyMeta.Bits)
}

func TestKeyService_GenerateInvalidBits(t *testing.T) {
	service, repo := setupKeyService(t)

	_, err := service.Generate(context.Background(), 2, "")
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidKeySize)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestKeyService_GenerateRepositoryFailure(t *testing.T) {
	service, repo := setupKeyService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := service.Generate(context.Background(), 0, "")
	assert.EqualError(t, err, "disk full")
}

func TestKeyService_List(t *testing.T) {
	service, repo := setupKeyService(t)
	stored := []*keys.KeyMeta{{ID: "a"}, {ID: "b"}}
	query := &keys.KeyQuery{Label: "alice"}
	repo.On("List", mock.Anything, query).Return(stored, nil)

	listed, err := service.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, stored, listed)
}

func TestKeyService_GetByID(t *testing.T) {
	service, repo := setupKeyService(t)
	repo.On("GetByID", mock.Anything, "known").Return(&keys.KeyMeta{ID: "known"}, nil)
	repo.On("GetByID", mock.Anything, "unknown").Return(nil, keys.ErrKeyNotFound)

	keyMeta, err := service.GetByID(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", keyMeta.ID)

	_, err = service.GetByID(context.Background(), "unknown")
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestKeyService_DeleteByID(t *testing.T) {
	service, repo := setupKeyService(t)
	repo.On("DeleteByID", mock.Anything, "known").Return(nil)
	repo.On("DeleteByID", mock.Anything, "unknown").Return(keys.ErrKeyNotFound)

	assert.NoError(t, service.DeleteByID(context.Background(), "known"))
	assert.ErrorIs(t, service.DeleteByID(context.Background(), "unknown"), keys.ErrKeyNotFound)
}

func TestNewKeyService_MissingDependencies(t *testing.T) {
	_, err := NewKeyService(nil, setupProcessor(t), testDefaultBits, nil)
	assert.Error(t, err)
}
