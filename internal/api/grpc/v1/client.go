package v1

import (
	"context"
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc"
)

// Client calls KeyService and CipherService over an established connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a Client on conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) invoke(ctx context.Context, service, method string, req, resp interface{}) error {
	return c.conn.Invoke(ctx, fullMethod(service, method), req, resp, grpc.CallContentSubtype(CodecName))
}

// Generate generates and stores an RSA keypair
func (c *Client) Generate(ctx context.Context, req *GenerateKeyRequest) (*KeyMetaResponse, error) {
	resp := new(KeyMetaResponse)
	if err := c.invoke(ctx, KeyServiceName, "Generate", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListMetadata collects every streamed key matching req
func (c *Client) ListMetadata(ctx context.Context, req *KeyMetadataQuery) ([]*KeyMetaResponse, error) {
	stream, err := c.conn.NewStream(ctx, &KeyServiceDesc.Streams[0], fullMethod(KeyServiceName, "ListMetadata"), grpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(req); err != nil {
		return nil, fmt.Errorf("failed to send query: %w", err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, fmt.Errorf("failed to close send: %w", err)
	}

	var keyMetas []*KeyMetaResponse
	for {
		keyMeta := new(KeyMetaResponse)
		err := stream.RecvMsg(keyMeta)
		if errors.Is(err, io.EOF) {
			return keyMetas, nil
		}
		if err != nil {
			return nil, err
		}
		keyMetas = append(keyMetas, keyMeta)
	}
}

// GetMetadataByID retrieves key metadata by ID
func (c *Client) GetMetadataByID(ctx context.Context, id string) (*KeyMetaResponse, error) {
	resp := new(KeyMetaResponse)
	if err := c.invoke(ctx, KeyServiceName, "GetMetadataByID", &IDRequest{ID: id}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteByID deletes a key by ID
func (c *Client) DeleteByID(ctx context.Context, id string) (*InfoResponse, error) {
	resp := new(InfoResponse)
	if err := c.invoke(ctx, KeyServiceName, "DeleteByID", &IDRequest{ID: id}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Encrypt encrypts text with a stored key
func (c *Client) Encrypt(ctx context.Context, req *TextRequest) (*BlocksResponse, error) {
	resp := new(BlocksResponse)
	if err := c.invoke(ctx, CipherServiceName, "Encrypt", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Decrypt decrypts blocks with a stored key
func (c *Client) Decrypt(ctx context.Context, req *BlocksRequest) (*TextResponse, error) {
	resp := new(TextResponse)
	if err := c.invoke(ctx, CipherServiceName, "Decrypt", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Sign signs text with a stored key
func (c *Client) Sign(ctx context.Context, req *TextRequest) (*BlocksResponse, error) {
	resp := new(BlocksResponse)
	if err := c.invoke(ctx, CipherServiceName, "Sign", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Verify checks a signature with a stored key
func (c *Client) Verify(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error) {
	resp := new(VerifyResponse)
	if err := c.invoke(ctx, CipherServiceName, "Verify", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
