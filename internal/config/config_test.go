package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tijeane/quran-learning/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                 ":8080",
		DBPath:               "test.db",
		LogLevel:             "INFO",
		JWTSecret:            "secret",
		TokenTTL:             time.Hour,
		SearchTimeout:        8 * time.Second,
		AyahTimeout:          5 * time.Second,
		StatsRefreshInterval: time.Hour,
		SpeechRate:           0.8,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "invalid level", level: "INVALID", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
		{name: "lowercase valid level", level: "debug", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_InvalidTimeouts(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero search timeout",
			mutate:        func(c *config.Config) { c.SearchTimeout = 0 },
			expectedError: "SEARCH_TIMEOUT",
		},
		{
			name:          "negative ayah timeout",
			mutate:        func(c *config.Config) { c.AyahTimeout = -time.Second },
			expectedError: "AYAH_TIMEOUT",
		},
		{
			name:          "zero refresh interval",
			mutate:        func(c *config.Config) { c.StatsRefreshInterval = 0 },
			expectedError: "STATS_REFRESH_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_InvalidSpeechRate(t *testing.T) {
	for _, rate := range []float64{0, -0.5, 4.5} {
		cfg := validConfig()
		cfg.SpeechRate = rate

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SPEECH_RATE")
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		DBPath:   "",
		LogLevel: "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "JWT_SECRET")
	assert.Contains(t, errStr, "SEARCH_TIMEOUT")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("SEARCH_TIMEOUT", "3s")
	t.Setenv("SIMULATE_LOOKUPS", "true")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.SearchTimeout)
	assert.True(t, cfg.SimulateLookups)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "SEARCH_TIMEOUT", "SIMULATE_LOOKUPS", "SPEECH_RATE"} {
		if v := os.Getenv(key); v != "" {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 8*time.Second, cfg.SearchTimeout)
	assert.False(t, cfg.SimulateLookups)
	assert.Equal(t, 0.8, cfg.SpeechRate)
}
