package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SqliteDbType selects the SQLite key store
const SqliteDbType = "sqlite"

// PostgresDbType selects the PostgreSQL key store
const PostgresDbType = "postgres"

// DatabaseSettings holds the key store connection settings.
// An empty DSN is only allowed for SQLite, where it means an in-memory database.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required_unless=Type sqlite"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
