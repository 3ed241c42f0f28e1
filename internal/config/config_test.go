package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", ".")
	t.Setenv("CONFIG_NAME", "test_config")
	t.Setenv("AUTH_MANAGER_PUBLIC_KEY", "public-key")

	t.Run("successful config loading", func(t *testing.T) {
		config, err := NewConfig()
		require.NoError(t, err)

		expectedConfig := Config{
			DB: DBConfig{
				Host:     "localhost",
				Port:     "5432",
				User:     "testuser",
				Password: "testpassword",
				Name:     "testdb",
				SSLMode:  "disable",
			},
			Redis: RedisConfig{Addr: "localhost:6379", DB: 1},
			Store: FileStoreConfig{
				Endpoint:  "localhost:9000",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
				Bucket:    "wildlog-sightings",
			},
			Server: ServerConfig{Host: "0.0.0.0", Port: "8080"},
			Auth: AuthManagerConfig{
				Algorithm: "EdDSA",
				PublicKey: "public-key",
				Issuer:    "wildlog-identity",
			},
			Log: LogConfig{Level: "debug", Format: "json"},
			Recognizer: RecognizerConfig{
				Address:                        "http://localhost:8001",
				Token:                          "recognizer-token",
				Timeout:                        5 * time.Second,
				MaxIdentificationsInProcessing: 4,
				MinConfidence:                  0.6,
			},
			Progression: ProgressionConfig{
				XPMode:       XPModeFlat,
				Timezone:     "Europe/Berlin",
				SpamSpecies:  []string{"pigeon", "sparrow"},
				SpamDailyCap: 3,
				SaveAttempts: 3,
			},
			RateLimit: RateLimitConfig{RPS: 1.5, Burst: 5},
		}
		assert.Equal(t, expectedConfig, config)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "./nonexistent")
		_, err := NewConfig()
		assert.Error(t, err)
	})

	t.Run("config from env variable", func(t *testing.T) {
		t.Setenv("DATABASE_HOST", "envhost")
		t.Setenv("DATABASE_PORT", "5433")
		t.Setenv("PROGRESSION_XP_MODE", "formula")

		config, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "envhost", config.DB.Host)
		assert.Equal(t, "5433", config.DB.Port)
		assert.Equal(t, XPModeFormula, config.Progression.XPMode)
	})

	t.Run("secrets absent from the file come from env", func(t *testing.T) {
		raw, err := os.ReadFile("test_config.yaml")
		require.NoError(t, err)

		var kept []string
		for _, line := range strings.Split(string(raw), "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "public_key:") || strings.HasPrefix(trimmed, "token:") {
				continue
			}
			kept = append(kept, line)
		}

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "test_config.yaml"), []byte(strings.Join(kept, "\n")), 0o600))
		t.Setenv("CONFIG_PATH", dir)
		t.Setenv("AUTH_MANAGER_PUBLIC_KEY", "env-public-key")
		t.Setenv("RECOGNIZER_TOKEN", "env-token")
		t.Setenv("REDIS_PASSWORD", "env-redis")

		config, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "env-public-key", config.Auth.PublicKey)
		assert.Equal(t, "env-token", config.Recognizer.Token)
		assert.Equal(t, "env-redis", config.Redis.Password)
	})

	t.Run("invalid xp mode is rejected", func(t *testing.T) {
		t.Setenv("PROGRESSION_XP_MODE", "double")
		_, err := NewConfig()
		assert.Error(t, err)
	})
}

func TestProgressionLocation(t *testing.T) {
	assert.Equal(t, time.UTC, ProgressionConfig{}.Location())
	assert.Equal(t, time.UTC, ProgressionConfig{Timezone: "Not/AZone"}.Location())

	if _, err := time.LoadLocation("Europe/Berlin"); err != nil {
		t.Skip("tzdata not available")
	}
	assert.Equal(t, "Europe/Berlin", ProgressionConfig{Timezone: "Europe/Berlin"}.Location().String())
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
