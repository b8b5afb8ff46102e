// Package config loads server settings from the environment.
//
// An optional .env file is read first; variables already present in the
// process environment take precedence over the file.
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

// Environment variable names.
const (
	EnvLogLevel         = "PAINT_BUCKET_LOG_LEVEL"
	EnvDefaultTolerance = "PAINT_BUCKET_DEFAULT_TOLERANCE"
	EnvMaxPixels        = "PAINT_BUCKET_MAX_PIXELS"
	EnvFile             = "PAINT_BUCKET_ENV_FILE"
)

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultTolerance = 32
	DefaultMaxPixels = 64 * 1024 * 1024
	DefaultEnvFile   = ".env"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string

	// DefaultTolerance is used by image_flood_fill when the caller omits
	// tolerance.
	DefaultTolerance uint8

	// MaxPixels caps width*height of images accepted for filling. 0 disables
	// the limit.
	MaxPixels int64
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:         DefaultLogLevel,
		DefaultTolerance: DefaultTolerance,
		MaxPixels:        DefaultMaxPixels,
	}
}

// Load reads the .env file named by PAINT_BUCKET_ENV_FILE (default ".env"),
// ignoring it if it does not exist, and then parses the environment.
func Load() (Config, error) {
	path := os.Getenv(EnvFile)
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level := strings.ToLower(v)
		if level != "info" && level != "debug" {
			return Config{}, fmt.Errorf("%s: unknown level %q (want info or debug)", EnvLogLevel, v)
		}
		cfg.LogLevel = level
	}

	if v := strings.TrimSpace(getenv(EnvDefaultTolerance)); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %q is not in 0-255: %w", EnvDefaultTolerance, v, err)
		}
		cfg.DefaultTolerance = uint8(n)
	}

	if v := strings.TrimSpace(getenv(EnvMaxPixels)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: %q is not a non-negative integer", EnvMaxPixels, v)
		}
		cfg.MaxPixels = n
	}

	return cfg, nil
}
