package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "GIN_MODE", "HTTP_ADDR", "LOG_LEVEL", "TZ", "SHUTDOWN_TIMEOUT",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_SSLMODE",
	"DB_SQLITE_PATH", "DB_MAX_ATTEMPTS", "DB_RETRY_DELAY", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10, cfg.DBMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.DBRetryDelay)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ReleaseModeRequiresSSL(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "require", cfg.DBSSLMode)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=sqlite\nDB_SQLITE_PATH=/tmp/lib.db\nDB_MAX_ATTEMPTS=3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/lib.db", cfg.DBSQLitePath)
	assert.Equal(t, 3, cfg.DBMaxAttempts)
}

func TestLoad_EnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("HTTP_ADDR", ":9090")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=postgres\nHTTP_ADDR=:7070\nDB_NAME=fromfile\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "fromfile", cfg.DBName)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("DB_RETRY_DELAY", "soon")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("DB_MAX_ATTEMPTS", "0")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBUser: "u", DBPass: "p", DBName: "lib",
		DBPort: "5432", DBSSLMode: "disable", TZ: "UTC",
	}

	assert.Equal(t,
		"host=db user=u password=p dbname=lib port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
