package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv          string
	GinMode         string
	HTTPAddr        string
	LogLevel        string
	TZ              string
	ShutdownTimeout time.Duration

	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPass         string
	DBName         string
	DBSSLMode      string
	DBSQLitePath   string
	DBMaxAttempts  int
	DBRetryDelay   time.Duration
	DBMaxOpenConns int
	DBMaxIdleConns int
}

// Load reads an optional .env file and then the process environment.
// Non-empty environment variables win over the file; empty ones count as
// unset.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := loadEnvFile(f); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		AppEnv:       getenv("APP_ENV", "development"),
		GinMode:      getenv("GIN_MODE", "debug"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		TZ:           getenv("TZ", "UTC"),
		DBDriver:     getenv("DB_DRIVER", DriverPostgres),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPass:       getenv("DB_PASS", ""),
		DBName:       getenv("DB_NAME", "library"),
		DBSSLMode:    os.Getenv("DB_SSLMODE"),
		DBSQLitePath: getenv("DB_SQLITE_PATH", "library.db"),
	}

	var err error
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.DBRetryDelay, err = getenvDuration("DB_RETRY_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.DBMaxAttempts, err = getenvInt("DB_MAX_ATTEMPTS", 10); err != nil {
		return nil, err
	}
	if cfg.DBMaxOpenConns, err = getenvInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = getenvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.DBMaxAttempts < 1 {
		return errors.New("DB_MAX_ATTEMPTS must be at least 1")
	}
	if c.DBRetryDelay < 0 {
		return errors.New("DB_RETRY_DELAY must not be negative")
	}
	if c.AppEnv == "production" && c.DBDriver == DriverPostgres && c.DBPass == "" {
		return errors.New("DB_PASS must be set in production")
	}

	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

// loadEnvFile fills variables that are unset or empty from f. A missing file
// is not an error.
func loadEnvFile(f string) error {
	if _, err := os.Stat(f); err != nil {
		return nil
	}

	values, err := godotenv.Read(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", f, err)
	}

	for k, v := range values {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
