package v1

import (
	"context"
	"fmt"

	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/fileio"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CipherServer handles gRPC requests for block operations with stored keys
type CipherServer struct {
	cipherService keys.CipherService
}

// NewCipherServer creates a new instance of CipherServer.
func NewCipherServer(cipherService keys.CipherService) (*CipherServer, error) {
	if cipherService == nil {
		return nil, fmt.Errorf("cipher service is required")
	}
	return &CipherServer{
		cipherService: cipherService,
	}, nil
}

// Encrypt encrypts text with the public half of a stored key
func (s *CipherServer) Encrypt(ctx context.Context, req *TextRequest) (*BlocksResponse, error) {
	cipher, err := s.cipherService.Encrypt(ctx, req.KeyID, req.Text)
	if err != nil {
		return nil, toStatus("encryption failed", err)
	}

	return &BlocksResponse{Blocks: fileio.IntegerStrings(cipher)}, nil
}

// Decrypt decrypts blocks with the private half of a stored key
func (s *CipherServer) Decrypt(ctx context.Context, req *BlocksRequest) (*TextResponse, error) {
	if len(req.Blocks) == 0 {
		return nil, status.Error(codes.InvalidArgument, "blocks are required")
	}

	cipher, err := fileio.ParseIntegerStrings(req.Blocks)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid blocks: %v", err)
	}

	text, err := s.cipherService.Decrypt(ctx, req.KeyID, cipher)
	if err != nil {
		return nil, toStatus("decryption failed", err)
	}

	return &TextResponse{Text: text}, nil
}

// Sign signs text with the private half of a stored key
func (s *CipherServer) Sign(ctx context.Context, req *TextRequest) (*BlocksResponse, error) {
	signature, err := s.cipherService.Sign(ctx, req.KeyID, req.Text)
	if err != nil {
		return nil, toStatus("signing failed", err)
	}

	return &BlocksResponse{Blocks: fileio.IntegerStrings(signature)}, nil
}

// Verify checks a signature with the public half of a stored key
func (s *CipherServer) Verify(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error) {
	if len(req.Signature) == 0 {
		return nil, status.Error(codes.InvalidArgument, "signature is required")
	}

	signature, err := fileio.ParseIntegerStrings(req.Signature)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid signature: %v", err)
	}

	valid, err := s.cipherService.Verify(ctx, req.KeyID, req.Text, signature)
	if err != nil {
		return nil, toStatus("verification failed", err)
	}

	return &VerifyResponse{Valid: valid}, nil
}
