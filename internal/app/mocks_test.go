//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
)

// MockKeyRepository is a mock implementation of the KeyRepository interface
type MockKeyRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockKeyRepository) Create(ctx context.Context, key *keys.KeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// List mocks the List method
func (m *MockKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// GetByID mocks the GetByID method
func (m *MockKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

// DeleteByID mocks the DeleteByID method
func (m *MockKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
