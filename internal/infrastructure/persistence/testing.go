//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
	"gorm.io/gorm"
)

// Test constants
const (
	TestKeyBits16 = 16
	TestKeyBits64 = 64

	TestLabelAlice = "alice"
	TestLabelBob   = "bob"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings *config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = &config.DatabaseSettings{
			Type: config.SqliteDbType,
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = &config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	keyRepo, err := NewGormKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates a stored key around the 61/53/17 keypair
func CreateTestKey(t *testing.T, label string) *keys.KeyMeta {
	t.Helper()

	return keys.NewKeyMeta(uuid.NewString(), label, 6, testutil.TextbookKeypair(), time.Now().UTC())
}

// CreateTestKeyWithOptions creates a stored key with custom bits and creation time
func CreateTestKeyWithOptions(t *testing.T, label string, bits int, created time.Time) *keys.KeyMeta {
	t.Helper()

	key := CreateTestKey(t, label)
	key.Bits = bits
	key.DateTimeCreated = created
	return key
}
