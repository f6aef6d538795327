package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/thaikhuong62000/RSA/internal/pkg/validators"
)

// Defaults applied when a setting is omitted
const (
	DefaultKeyBits           = 512
	DefaultMillerRabinRounds = 20
)

// RSASettings tunes key generation.
// MaxAttempts bounds the candidate draws per prime; 0 means unbounded.
type RSASettings struct {
	DefaultKeyBits    int `mapstructure:"default_key_bits" validate:"keybits"`
	MillerRabinRounds int `mapstructure:"miller_rabin_rounds" validate:"min=1,max=128"`
	MaxAttempts       int `mapstructure:"max_attempts" validate:"min=0"`
}

// DefaultRSASettings returns 512-bit primes, 20 Miller-Rabin rounds and no attempt limit.
func DefaultRSASettings() *RSASettings {
	return &RSASettings{
		DefaultKeyBits:    DefaultKeyBits,
		MillerRabinRounds: DefaultMillerRabinRounds,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybits", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register keybits validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	return nil
}
