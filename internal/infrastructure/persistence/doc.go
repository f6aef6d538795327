// Package persistence provides the GORM-backed key store.
// It opens SQLite or PostgreSQL connections, migrates the schema and
// implements the key repository with validation and logging.
package persistence
