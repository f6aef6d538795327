package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyQuery filters, sorts and pages stored keys. Zero values disable a filter.
type KeyQuery struct {
	Label           string    `validate:"omitempty,max=255"`
	Bits            int       `validate:"omitempty,min=0"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,min=0"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=id label bits date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery creates a KeyQuery with no filters
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{}
}

// Validate for validating KeyQuery struct
func (k *KeyQuery) Validate() error {
	validate := validator.New()

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
