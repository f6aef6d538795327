package models

import (
	"time"

	"github.com/thaikhuong62000/RSA/internal/domain/keys"
)

// KeyModel is the GORM database model for stored RSA keys (infrastructure concern)
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Label           string    `gorm:"index;type:varchar(255)"`
	Bits            int       `gorm:"not null;type:integer"`
	E               string    `gorm:"not null;type:text"`
	D               string    `gorm:"not null;type:text"`
	N               string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "rsa_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              m.ID,
		Label:           m.Label,
		Bits:            m.Bits,
		E:               m.E,
		D:               m.D,
		N:               m.N,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *keys.KeyMeta) {
	m.ID = k.ID
	m.Label = k.Label
	m.Bits = k.Bits
	m.E = k.E
	m.D = k.D
	m.N = k.N
	m.DateTimeCreated = k.DateTimeCreated
}
