package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/pkg/validators"
)

// ErrorResponse represents an error message response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message response
type InfoResponse struct {
	Message string `json:"message"`
}

// GenerateKeyRequest is the body of POST /keys. Bits 0 selects the server default.
type GenerateKeyRequest struct {
	Bits  int    `json:"bits" validate:"omitempty,keybits"`
	Label string `json:"label" validate:"max=255"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybits", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register keybits validation: %w", err)
	}
	return formatValidationError(validate.Struct(r))
}

// KeyMetaResponse is a stored key without its private exponent
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	Label           string    `json:"label"`
	Bits            int       `json:"bits"`
	E               string    `json:"e"`
	N               string    `json:"n"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeyMetaResponse maps a stored key to its public response
func NewKeyMetaResponse(k *keys.KeyMeta) KeyMetaResponse {
	return KeyMetaResponse{
		ID:              k.ID,
		Label:           k.Label,
		Bits:            k.Bits,
		E:               k.E,
		N:               k.N,
		DateTimeCreated: k.DateTimeCreated,
	}
}

// TextRequest is the body of the encrypt and sign endpoints
type TextRequest struct {
	Text string `json:"text"`
}

// BlocksRequest is the body of the decrypt endpoint. Blocks are decimal strings.
type BlocksRequest struct {
	Blocks []string `json:"blocks" validate:"required,min=1,dive,number"`
}

// Validate for validating BlocksRequest struct
func (r *BlocksRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// VerifyRequest is the body of the verify endpoint
type VerifyRequest struct {
	Text      string   `json:"text"`
	Signature []string `json:"signature" validate:"required,min=1,dive,number"`
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// BlocksResponse carries cipher or signature blocks as decimal strings
type BlocksResponse struct {
	Blocks []string `json:"blocks"`
}

// TextResponse carries decrypted text
type TextResponse struct {
	Text string `json:"text"`
}

// VerifyResponse reports the outcome of a signature check
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}
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
