// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Storage drivers accepted by STORE_DRIVER.
const (
	DriverFile     = "file"
	DriverBadger   = "badger"
	DriverPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Each koanf key is the lower-cased name of its environment variable.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "5000".
	Port string `koanf:"port" validate:"required,numeric"`

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// StoreDriver selects the collection backend. Defaults to "file".
	StoreDriver string `koanf:"store_driver" validate:"oneof=file badger postgres"`

	// DataDir holds markers.json, comments.json and routes.json for the file driver.
	DataDir string `koanf:"data_dir" validate:"required_if=StoreDriver file"`

	// BadgerDir is the badger database directory for the badger driver.
	BadgerDir string `koanf:"badger_dir" validate:"required_if=StoreDriver badger"`

	// DatabaseURL is the Postgres connection string. Required for the postgres driver.
	DatabaseURL string `koanf:"database_url" validate:"required_if=StoreDriver postgres"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override the "*" default.
	CORSOrigins []string `koanf:"cors_origins" validate:"min=1"`

	// RateLimitPerMinute caps requests per client IP. 0 disables limiting.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute" validate:"gte=0"`

	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gt=0"`
}

func defaults() Config {
	return Config{
		Port:         "5000",
		LogLevel:     "info",
		StoreDriver:  DriverFile,
		DataDir:      "data",
		BadgerDir:    "data/badger",
		CORSOrigins:  []string{"*"},
		MaxBodyBytes: 1 << 20,
	}
}

// Load reads configuration from environment variables over the defaults and
// validates the result. Empty variables count as unset. The returned error
// names the offending variables.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config.Load: defaults: %w", err)
	}
	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return Config{}, fmt.Errorf("config.Load: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := check(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envValue maps PORT to port and so on. It drops empty values so they do not
// shadow the defaults, and splits CORS_ORIGINS into a list.
func envValue(key, value string) (string, any) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	key = strings.ToLower(key)
	if key == "cors_origins" {
		origins := splitCSV(value)
		if len(origins) == 0 {
			return "", nil
		}
		return key, origins
	}
	return key, value
}

// check runs the struct validation and reports failures by env var name.
func check(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return strings.ToUpper(name)
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config.Load: %w", err)
	}
	bad := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		bad = append(bad, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid environment variables: %s", strings.Join(bad, ", "))
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
