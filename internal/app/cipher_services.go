package app

import (
	"context"
	"fmt"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
)

// cipherService implements the CipherService interface with keys resolved from the key store
type cipherService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(keyRepo keys.KeyRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.CipherService, error) {
	if keyRepo == nil || rsaProcessor == nil {
		return nil, fmt.Errorf("key repository and RSA processor are required")
	}
	return &cipherService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts text with the public half of the stored key.
func (s *cipherService) Encrypt(ctx context.Context, keyID, text string) ([]cryptoalg.Block, error) {
	publicKey, err := s.publicKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	cipher, err := s.rsaProcessor.EncryptText(text, publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return cipher, nil
}

// Decrypt decrypts cipher blocks with the private half of the stored key.
func (s *cipherService) Decrypt(ctx context.Context, keyID string, cipher []cryptoalg.Block) (string, error) {
	privateKey, err := s.privateKey(ctx, keyID)
	if err != nil {
		return "", err
	}

	plain, err := s.rsaProcessor.DecryptBlocks(cipher, privateKey)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return string(plain), nil
}

// Sign signs text with the private half of the stored key.
func (s *cipherService) Sign(ctx context.Context, keyID, text string) ([]cryptoalg.Block, error) {
	privateKey, err := s.privateKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	signature, err := s.rsaProcessor.SignText(text, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return signature, nil
}

// Verify reports whether signature verifies to exactly the blocks of text.
func (s *cipherService) Verify(ctx context.Context, keyID, text string, signature []cryptoalg.Block) (bool, error) {
	publicKey, err := s.publicKey(ctx, keyID)
	if err != nil {
		return false, err
	}

	valid, err := s.rsaProcessor.VerifyText(text, signature, publicKey)
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	return valid, nil
}

// Helper functions
func (s *cipherService) publicKey(ctx context.Context, keyID string) (*cryptoalg.PublicKey, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve key: %w", err)
	}
	return keyMeta.PublicKey()
}

func (s *cipherService) privateKey(ctx context.Context, keyID string) (*cryptoalg.PrivateKey, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve key: %w", err)
	}
	return keyMeta.PrivateKey()
}
