//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
)

// MockKeyService is a mock implementation of KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) Generate(ctx context.Context, bits int, label string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, bits, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, keyID, text string) ([]cryptoalg.Block, error) {
	args := m.Called(ctx, keyID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cryptoalg.Block), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, keyID string, cipher []cryptoalg.Block) (string, error) {
	args := m.Called(ctx, keyID, cipher)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) Sign(ctx context.Context, keyID, text string) ([]cryptoalg.Block, error) {
	args := m.Called(ctx, keyID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cryptoalg.Block), args.Error(1)
}

func (m *MockCipherService) Verify(ctx context.Context, keyID, text string, signature []cryptoalg.Block) (bool, error) {
	args := m.Called(ctx, keyID, text, signature)
	return args.Bool(0), args.Error(1)
}
