package v1

import (
	"errors"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeFor maps service errors to gRPC status codes
func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return codes.NotFound
	case errors.Is(err, cryptoalg.ErrInvalidKeySize),
		errors.Is(err, cryptoalg.ErrBlockTooLarge),
		errors.Is(err, cryptoalg.ErrInvalidBlock),
		errors.Is(err, cryptoalg.ErrMalformedPersistedValue):
		return codes.InvalidArgument
	case errors.Is(err, cryptoalg.ErrAttemptsExhausted):
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}

// toStatus wraps err into a status error carrying msg as prefix
func toStatus(msg string, err error) error {
	return status.Errorf(codeFor(err), "%s: %v", msg, err)
}
