package v1

import (
	"errors"
	"net/http"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, cryptoalg.ErrInvalidKeySize),
		errors.Is(err, cryptoalg.ErrBlockTooLarge),
		errors.Is(err, cryptoalg.ErrInvalidBlock):
		return http.StatusBadRequest
	case errors.Is(err, cryptoalg.ErrAttemptsExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
