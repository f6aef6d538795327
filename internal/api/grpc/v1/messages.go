package v1

import (
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// GenerateKeyRequest asks for a new stored keypair. Bits 0 selects the server default.
type GenerateKeyRequest struct {
	Bits  int    `json:"bits"`
	Label string `json:"label"`
}

// KeyMetadataQuery filters, sorts and pages stored keys
type KeyMetadataQuery struct {
	Label           string                 `json:"label"`
	Bits            int                    `json:"bits"`
	DateTimeCreated *timestamppb.Timestamp `json:"date_time_created"`
	Limit           int                    `json:"limit"`
	Offset          int                    `json:"offset"`
	SortBy          string                 `json:"sort_by"`
	SortOrder       string                 `json:"sort_order"`
}

// IDRequest addresses a stored key
type IDRequest struct {
	ID string `json:"id"`
}

// KeyMetaResponse is a stored key without its private exponent
type KeyMetaResponse struct {
	ID              string                 `json:"id"`
	Label           string                 `json:"label"`
	Bits            int                    `json:"bits"`
	E               string                 `json:"e"`
	N               string                 `json:"n"`
	DateTimeCreated *timestamppb.Timestamp `json:"date_time_created"`
}

// InfoResponse carries an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// TextRequest carries text for encryption or signing
type TextRequest struct {
	KeyID string `json:"key_id"`
	Text  string `json:"text"`
}

// BlocksRequest carries cipher blocks as decimal strings
type BlocksRequest struct {
	KeyID  string   `json:"key_id"`
	Blocks []string `json:"blocks"`
}

// VerifyRequest carries text and its signature blocks as decimal strings
type VerifyRequest struct {
	KeyID     string   `json:"key_id"`
	Text      string   `json:"text"`
	Signature []string `json:"signature"`
}

// BlocksResponse carries cipher or signature blocks as decimal strings
type BlocksResponse struct {
	Blocks []string `json:"blocks"`
}

// TextResponse carries decrypted text
type TextResponse struct {
	Text string `json:"text"`
}

// VerifyResponse reports whether a signature is valid
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func newKeyMetaResponse(k *keys.KeyMeta) *KeyMetaResponse {
	return &KeyMetaResponse{
		ID:              k.ID,
		Label:           k.Label,
		Bits:            k.Bits,
		E:               k.E,
		N:               k.N,
		DateTimeCreated: timestamppb.New(k.DateTimeCreated),
	}
}

// toKeyQuery maps the request onto a KeyQuery; a nil or zero timestamp disables the date filter
func (q *KeyMetadataQuery) toKeyQuery() *keys.KeyQuery {
	query := keys.NewKeyQuery()
	query.Label = q.Label
	query.Bits = q.Bits
	query.Limit = q.Limit
	query.Offset = q.Offset
	query.SortBy = q.SortBy
	query.SortOrder = q.SortOrder
	if q.DateTimeCreated != nil && (q.DateTimeCreated.GetSeconds() != 0 || q.DateTimeCreated.GetNanos() != 0) {
		query.DateTimeCreated = q.DateTimeCreated.AsTime()
	}
	return query
}
