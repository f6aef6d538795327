package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// KeyBitsValidation validates the prime bit length requested for key generation.
func KeyBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()
	return bits >= cryptoalg.MinKeyBits && bits <= cryptoalg.MaxKeyBits
}
