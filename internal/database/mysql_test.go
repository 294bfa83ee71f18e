package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:           "db.local",
		Port:           3307,
		User:           "admin",
		Password:       "p@ss:word",
		Name:           "academia_veritas",
		Charset:        "utf8mb4",
		ConnectTimeout: 5 * time.Second,
	}
}

func TestServerDSN_NoSchemaSelected(t *testing.T) {
	parsed, err := mysql.ParseDSN(ServerDSN(testDatabaseConfig()))
	require.NoError(t, err)

	assert.Equal(t, "", parsed.DBName)
	assert.Equal(t, "db.local:3307", parsed.Addr)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "admin", parsed.User)
	assert.Equal(t, "p@ss:word", parsed.Passwd)
	assert.Equal(t, 5*time.Second, parsed.Timeout)
	assert.True(t, parsed.ParseTime)
	assert.False(t, parsed.MultiStatements)
}

func TestDSN_SelectsSchema(t *testing.T) {
	parsed, err := mysql.ParseDSN(DSN(testDatabaseConfig()))
	require.NoError(t, err)

	assert.Equal(t, "academia_veritas", parsed.DBName)
}

func TestMigrateDSN_AllowsMultiStatements(t *testing.T) {
	parsed, err := mysql.ParseDSN(MigrateDSN(testDatabaseConfig()))
	require.NoError(t, err)

	assert.Equal(t, "academia_veritas", parsed.DBName)
	assert.True(t, parsed.MultiStatements)
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.ConnectTimeout = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := Connect(ctx, ServerDSN(cfg))

	assert.Nil(t, db)
	require.Error(t, err)
	assert.ErrorIs(t, err, verrors.ErrDatabaseUnavailable)
}
