package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"FLEET_APP_NAME":                os.Getenv("FLEET_APP_NAME"),
		"FLEET_APP_ENV":                 os.Getenv("FLEET_APP_ENV"),
		"FLEET_APP_PORT":                os.Getenv("FLEET_APP_PORT"),
		"FLEET_DATABASE_HOST":           os.Getenv("FLEET_DATABASE_HOST"),
		"FLEET_DATABASE_PORT":           os.Getenv("FLEET_DATABASE_PORT"),
		"FLEET_DATABASE_USER":           os.Getenv("FLEET_DATABASE_USER"),
		"FLEET_DATABASE_PASSWORD":       os.Getenv("FLEET_DATABASE_PASSWORD"),
		"FLEET_DATABASE_DBNAME":         os.Getenv("FLEET_DATABASE_DBNAME"),
		"FLEET_DATABASE_SSLMODE":        os.Getenv("FLEET_DATABASE_SSLMODE"),
		"FLEET_DATABASE_MAX_OPEN_CONNS": os.Getenv("FLEET_DATABASE_MAX_OPEN_CONNS"),
		"FLEET_DATABASE_MAX_IDLE_CONNS": os.Getenv("FLEET_DATABASE_MAX_IDLE_CONNS"),
		"FLEET_JWT_SECRET":              os.Getenv("FLEET_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fleetledger-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "fleetledger", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	})

	t.Run("loads values from environment variables with FLEET prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FLEET_APP_NAME", "test-app")
		os.Setenv("FLEET_APP_PORT", "9000")
		os.Setenv("FLEET_DATABASE_HOST", "testdb.local")
		os.Setenv("FLEET_DATABASE_PORT", "5433")
		os.Setenv("FLEET_DATABASE_USER", "testuser")
		os.Setenv("FLEET_DATABASE_PASSWORD", "testpass")
		os.Setenv("FLEET_DATABASE_DBNAME", "testdb")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("FLEET_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("FLEET_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("FLEET_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "fleet",
		Password: "p@ss:word/special",
		DBName:   "fleetledger",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "fleetledger")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss:word/special")
}
