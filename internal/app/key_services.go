package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
)

// keyService implements the KeyService interface for generating and managing stored keys
type keyService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAProcessor
	defaultBits  int
	logger       logger.Logger
}

// NewKeyService creates a new keyService instance.
// defaultBits is used when Generate is called with 0 bits.
func NewKeyService(
	keyRepo keys.KeyRepository,
	rsaProcessor cryptoalg.RSAProcessor,
	defaultBits int,
	logger logger.Logger,
) (keys.KeyService, error) {
	if keyRepo == nil || rsaProcessor == nil {
		return nil, fmt.Errorf("key repository and RSA processor are required")
	}
	return &keyService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		defaultBits:  defaultBits,
		logger:       logger,
	}, nil
}

// Generate creates a keypair and stores it under a new ID.
func (s *keyService) Generate(ctx context.Context, bits int, label string) (*keys.KeyMeta, error) {
	if bits == 0 {
		bits = s.defaultBits
	}

	keypair, err := s.rsaProcessor.GenerateKeys(bits)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	keyMeta := keys.NewKeyMeta(uuid.NewString(), label, bits, keypair, time.Now().UTC())
	if err := s.keyRepo.Create(ctx, keyMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Generated and stored RSA key ", keyMeta.ID)
	return keyMeta, nil
}

// List retrieves stored keys considering a query filter when set.
func (s *keyService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keyMetas, nil
}

// GetByID retrieves a stored key by its unique ID.
func (s *keyService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve key: %w", err)
	}
	return keyMeta, nil
}

// DeleteByID deletes a stored key by its unique ID.
func (s *keyService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	s.logger.Info("Deleted RSA key ", keyID)
	return nil
}
