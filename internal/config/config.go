// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenAIAPIKey is the bearer credential for the general-purpose
	// completion endpoint (prompt composition and booklet formatting).
	// Required: the server refuses to start without it.
	OpenAIAPIKey string

	// PerplexityAPIKey is the bearer credential for the search-augmented
	// completion endpoint (recommendation retrieval). Required.
	PerplexityAPIKey string

	// OpenAIBaseURL and PerplexityBaseURL override the upstream endpoints.
	// Empty means the production defaults; tests point them at stubs.
	OpenAIBaseURL     string
	PerplexityBaseURL string

	// UpstreamTimeout bounds each individual upstream model call.
	// Defaults to 60s; generation calls are slow but not unbounded.
	UpstreamTimeout time.Duration

	// MaxBodyBytes limits incoming request body sizes. Defaults to 1 MiB,
	// generous for a preferences payload.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		PerplexityBaseURL: os.Getenv("PERPLEXITY_BASE_URL"),
	}

	var err error
	cfg.UpstreamTimeout, err = parseDuration("UPSTREAM_TIMEOUT", time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxBodyBytes, err = parseInt64("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}

	var missing []string

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	cfg.PerplexityAPIKey = os.Getenv("PERPLEXITY_API_KEY")
	if cfg.PerplexityAPIKey == "" {
		missing = append(missing, "PERPLEXITY_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseDuration reads a duration-valued variable ("45s", "2m"), returning
// fallback when unset.
func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// parseInt64 reads an integer-valued variable, returning fallback when unset.
func parseInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
