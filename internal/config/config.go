// Package config loads configuration from environment variables, with a
// best-effort .env file for development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/swan07222/RealScroll-app/pkg/store"
)

// Config holds client configuration.
type Config struct {
	APIBaseURL      string
	APITimeout      time.Duration
	UseMocks        bool
	DefaultPageSize int
	StatePath       string
	LogLevel        string
	LogFormat       string
}

// Load reads client configuration with defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:      envOr("API_URL", "http://localhost:3000/api"),
		APITimeout:      envDuration("API_TIMEOUT", 30*time.Second),
		UseMocks:        envBool("USE_MOCKS", false),
		DefaultPageSize: envInt("DEFAULT_PAGE_SIZE", 20),
		StatePath:       envOr("STATE_PATH", store.DefaultPath()),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		LogFormat:       envOr("LOG_FORMAT", "console"),
	}
}

// ServerConfig holds mock server configuration.
type ServerConfig struct {
	ListenAddr  string
	MetricsAddr string
	JWTSecret   string
	OTPCode     string
	LogLevel    string
	LogFormat   string
}

// LoadServer reads mock server configuration with defaults. The defaults
// are development values; the mock server is never a production surface.
func LoadServer() *ServerConfig {
	_ = godotenv.Load()

	return &ServerConfig{
		ListenAddr:  envOr("LISTEN_ADDR", ":3000"),
		MetricsAddr: envOr("METRICS_ADDR", ":9090"),
		JWTSecret:   envOr("JWT_SECRET", "realscroll-dev-secret"),
		OTPCode:     envOr("OTP_CODE", "123456"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogFormat:   envOr("LOG_FORMAT", "json"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
