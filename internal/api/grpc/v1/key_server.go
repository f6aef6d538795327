package v1

import (
	"context"
	"fmt"

	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// KeyServer handles gRPC requests for generating and managing stored keys
type KeyServer struct {
	keyService keys.KeyService
}

// NewKeyServer creates a new instance of KeyServer.
func NewKeyServer(keyService keys.KeyService) (*KeyServer, error) {
	if keyService == nil {
		return nil, fmt.Errorf("key service is required")
	}
	return &KeyServer{
		keyService: keyService,
	}, nil
}

// Generate generates and stores an RSA keypair
func (s *KeyServer) Generate(ctx context.Context, req *GenerateKeyRequest) (*KeyMetaResponse, error) {
	keyMeta, err := s.keyService.Generate(ctx, req.Bits, req.Label)
	if err != nil {
		return nil, toStatus("failed to generate key", err)
	}

	return newKeyMetaResponse(keyMeta), nil
}

// ListMetadata streams the metadata of every stored key matching the query
func (s *KeyServer) ListMetadata(req *KeyMetadataQuery, stream grpc.ServerStream) error {
	query := req.toKeyQuery()
	if err := query.Validate(); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid query: %v", err)
	}

	keyMetas, err := s.keyService.List(stream.Context(), query)
	if err != nil {
		return toStatus("failed to list keys", err)
	}

	for _, keyMeta := range keyMetas {
		if err := stream.SendMsg(newKeyMetaResponse(keyMeta)); err != nil {
			return fmt.Errorf("failed to send metadata response: %w", err)
		}
	}

	return nil
}

// GetMetadataByID retrieves key metadata by ID
func (s *KeyServer) GetMetadataByID(ctx context.Context, req *IDRequest) (*KeyMetaResponse, error) {
	keyMeta, err := s.keyService.GetByID(ctx, req.ID)
	if err != nil {
		return nil, toStatus("failed to get key by ID", err)
	}

	return newKeyMetaResponse(keyMeta), nil
}

// DeleteByID deletes a key by ID
func (s *KeyServer) DeleteByID(ctx context.Context, req *IDRequest) (*InfoResponse, error) {
	if err := s.keyService.DeleteByID(ctx, req.ID); err != nil {
		return nil, toStatus("failed to delete key", err)
	}

	return &InfoResponse{Message: fmt.Sprintf("deleted key with id %s", req.ID)}, nil
}
