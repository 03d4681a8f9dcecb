package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	JWTSecret            string
	TokenTTL             time.Duration
	SearchTimeout        time.Duration
	AyahTimeout          time.Duration
	SimulateLookups      bool
	StatsRefreshInterval time.Duration
	CORSOrigins          []string
	SpeechEnabled        bool
	SpeechVoice          string
	SpeechRate           float64
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:quranwords.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		JWTSecret:            envOr("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:             envDurOr("TOKEN_TTL", 30*24*time.Hour),
		SearchTimeout:        envDurOr("SEARCH_TIMEOUT", 8*time.Second),
		AyahTimeout:          envDurOr("AYAH_TIMEOUT", 5*time.Second),
		SimulateLookups:      envBoolOr("SIMULATE_LOOKUPS", false),
		StatsRefreshInterval: envDurOr("STATS_REFRESH_INTERVAL", time.Hour),
		CORSOrigins:          envListOr("CORS_ORIGINS", []string{"*"}),
		SpeechEnabled:        envBoolOr("SPEECH_ENABLED", false),
		SpeechVoice:          envOr("SPEECH_VOICE", "ar-XA-Standard-A"),
		SpeechRate:           envFloatOr("SPEECH_RATE", 0.8),
	}
}

// Validate checks the configuration for values the server cannot run with.
// All problems are reported at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET cannot be empty")
	}
	if c.SearchTimeout <= 0 {
		problems = append(problems, "SEARCH_TIMEOUT must be positive")
	}
	if c.AyahTimeout <= 0 {
		problems = append(problems, "AYAH_TIMEOUT must be positive")
	}
	if c.StatsRefreshInterval <= 0 {
		problems = append(problems, "STATS_REFRESH_INTERVAL must be positive")
	}
	if c.SpeechRate <= 0 || c.SpeechRate > 4 {
		problems = append(problems, fmt.Sprintf("SPEECH_RATE must be in (0, 4] (got %g)", c.SpeechRate))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}

func envDurOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
