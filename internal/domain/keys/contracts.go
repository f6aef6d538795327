package keys

import (
	"context"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// KeyService defines methods for generating and managing stored RSA keys.
type KeyService interface {
	// Generate creates a keypair whose primes have bits bits (0 selects the
	// configured default) and stores it under a new ID.
	Generate(ctx context.Context, bits int, label string) (*KeyMeta, error)

	// List retrieves stored keys considering a query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves a stored key by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DeleteByID deletes a stored key by its unique ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// CipherService runs block operations with a stored key.
type CipherService interface {
	// Encrypt encrypts text with the public half of the key.
	Encrypt(ctx context.Context, keyID, text string) ([]cryptoalg.Block, error)

	// Decrypt decrypts cipher blocks with the private half of the key.
	Decrypt(ctx context.Context, keyID string, cipher []cryptoalg.Block) (string, error)

	// Sign signs text with the private half of the key.
	Sign(ctx context.Context, keyID, text string) ([]cryptoalg.Block, error)

	// Verify reports whether signature verifies to exactly the blocks of text.
	Verify(ctx context.Context, keyID, text string, signature []cryptoalg.Block) (bool, error)
}

// KeyRepository defines the interface for stored key operations
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}
