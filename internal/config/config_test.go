package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("CLUB_CONFLICT_RETRIES", "")
		t.Setenv("HTTP_ADDR", "")

		cfg := Load()

		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, StorageDriverPostgres, cfg.App.StorageDriver)
		assert.Equal(t, 3, cfg.App.ConflictRetries)
		assert.Equal(t, ":8080", cfg.Server.Addr)
	})

	t.Run("overrides from env", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
		t.Setenv("CLUB_CONFLICT_RETRIES", "7")
		t.Setenv("DB_NAME", "other")

		cfg := Load()

		assert.Equal(t, StorageDriverMemory, cfg.App.StorageDriver)
		assert.Equal(t, 7, cfg.App.ConflictRetries)
		assert.Equal(t, "other", cfg.Database.DBName)
	})

	t.Run("invalid retry count falls back to default", func(t *testing.T) {
		t.Setenv("CLUB_CONFLICT_RETRIES", "zero")
		assert.Equal(t, 3, Load().App.ConflictRetries)

		t.Setenv("CLUB_CONFLICT_RETRIES", "0")
		assert.Equal(t, 3, Load().App.ConflictRetries)
	})
}
