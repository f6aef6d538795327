package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/pkg/validators"
)

// ErrKeyNotFound is returned when no stored key has the requested ID.
var ErrKeyNotFound = errors.New("key not found")

// KeyMeta is a stored RSA keypair. Big integers are kept as decimal strings.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	Label           string    `validate:"max=255"`
	Bits            int       `validate:"keybits"`
	E               string    `validate:"required,number"`
	D               string    `validate:"required,number"`
	N               string    `validate:"required,number"`
	DateTimeCreated time.Time `validate:"required"`
}

// NewKeyMeta builds a KeyMeta from generated key material.
func NewKeyMeta(id, label string, bits int, keypair *cryptoalg.Keypair, created time.Time) *KeyMeta {
	return &KeyMeta{
		ID:              id,
		Label:           label,
		Bits:            bits,
		E:               keypair.E.String(),
		D:               keypair.D.String(),
		N:               keypair.N.String(),
		DateTimeCreated: created,
	}
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybits", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register keybits validation: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// PublicKey parses the stored (e, n).
func (k *KeyMeta) PublicKey() (*cryptoalg.PublicKey, error) {
	e, err := parseStored("e", k.E)
	if err != nil {
		return nil, err
	}
	n, err := parseStored("n", k.N)
	if err != nil {
		return nil, err
	}

	publicKey := &cryptoalg.PublicKey{E: e, N: n}
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("key %s: %w", k.ID, err)
	}
	return publicKey, nil
}

// PrivateKey parses the stored (d, n).
func (k *KeyMeta) PrivateKey() (*cryptoalg.PrivateKey, error) {
	d, err := parseStored("d", k.D)
	if err != nil {
		return nil, err
	}
	n, err := parseStored("n", k.N)
	if err != nil {
		return nil, err
	}

	privateKey := &cryptoalg.PrivateKey{D: d, N: n}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("key %s: %w", k.ID, err)
	}
	return privateKey, nil
}

func parseStored(name, value string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("stored %s %q: %w", name, value, cryptoalg.ErrMalformedPersistedValue)
	}
	return v, nil
}
