// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Data sources the register can be loaded from.
const (
	SourcePostgres = "postgres"
	SourceREST     = "rest"
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
	// Defaults to ["http://localhost:5173"]. Set CORS_ORIGINS to a
	// comma-separated list to override.
	CORSOrigins []string

	// DataSource selects where gate entries come from: "postgres" or "rest".
	DataSource string

	// DatabaseURL is the Postgres connection string. Required for postgres.
	DatabaseURL string

	// MigrateOnStart applies the embedded migrations before serving.
	MigrateOnStart bool

	// RegisterAPIURL is the base URL of the upstream register API. Required for rest.
	RegisterAPIURL string

	// RegisterAPIToken is the bearer token the session starts with. May be empty.
	RegisterAPIToken string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable that is set to something unusable.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DataSource:       strings.ToLower(getEnv("DATA_SOURCE", SourcePostgres)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RegisterAPIURL:   os.Getenv("REGISTER_API_URL"),
		RegisterAPIToken: os.Getenv("REGISTER_API_TOKEN"),
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes < 1 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	if cfg.MigrateOnStart, err = strconv.ParseBool(getEnv("MIGRATE_ON_START", "false")); err != nil {
		return Config{}, fmt.Errorf("MIGRATE_ON_START must be a boolean")
	}

	var missing []string
	switch cfg.DataSource {
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case SourceREST:
		if cfg.RegisterAPIURL == "" {
			missing = append(missing, "REGISTER_API_URL")
		}
	default:
		return Config{}, fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", SourcePostgres, SourceREST, cfg.DataSource)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDotEnv copies variables from the given env files (".env" when none are
// named) into the process environment before Load reads it. Variables that
// are already set win. Files that do not exist are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var found []string
	for _, p := range paths {
		_, err := os.Stat(p)
		switch {
		case err == nil:
			found = append(found, p)
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("config.LoadDotEnv: %w", err)
		}
	}
	if len(found) == 0 {
		return nil
	}
	if err := godotenv.Load(found...); err != nil {
		return fmt.Errorf("config.LoadDotEnv: %w", err)
	}
	return nil
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
