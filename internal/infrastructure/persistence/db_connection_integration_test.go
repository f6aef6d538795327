//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
)

func TestNewDBConnection_SqliteFile(t *testing.T) {
	settings := &config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  filepath.Join(t.TempDir(), "keys.db"),
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("rsa_keys"))
}

func TestNewDBConnection_InvalidSettings(t *testing.T) {
	_, err := NewDBConnection(nil)
	assert.Error(t, err)

	_, err = NewDBConnection(&config.DatabaseSettings{Type: "mysql", DSN: "x"})
	assert.Error(t, err)

	_, err = NewDBConnection(&config.DatabaseSettings{Type: config.PostgresDbType})
	assert.Error(t, err)
}
