package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/snnyvrz/library-api/internal/config"
	"github.com/snnyvrz/library-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:      config.DriverSQLite,
		DBSQLitePath:  filepath.Join(t.TempDir(), "library.db"),
		DBMaxAttempts: 2,
		DBRetryDelay:  10 * time.Millisecond,
		LogLevel:      "error",
	}
}

func TestConnectWithRetry_SQLite(t *testing.T) {
	cfg := sqliteConfig(t)

	database, err := ConnectWithRetry(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(database))
	assert.True(t, database.Migrator().HasTable(&model.Author{}))
	assert.True(t, database.Migrator().HasTable(&model.Book{}))
}

func TestConnectWithRetry_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DBDriver = "oracle"

	_, err := ConnectWithRetry(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestConnectWithRetry_GivesUp(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DBSQLitePath = filepath.Join(t.TempDir(), "missing", "dir", "library.db")

	_, err := ConnectWithRetry(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestDialector(t *testing.T) {
	cfg := sqliteConfig(t)

	d, err := Dialector(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	cfg.DBDriver = config.DriverPostgres
	cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName, cfg.DBSSLMode, cfg.TZ = "localhost", "5432", "u", "lib", "disable", "UTC"
	d, err = Dialector(cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}
