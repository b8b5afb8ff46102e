package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.Debug())
}

func TestFromEnv_Values(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvLogLevel:         "DEBUG",
		EnvDefaultTolerance: "0",
		EnvMaxPixels:        "0",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.Debug())
	assert.Equal(t, uint8(0), cfg.DefaultTolerance)
	assert.Equal(t, int64(0), cfg.MaxPixels)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown level", map[string]string{EnvLogLevel: "trace"}},
		{"tolerance too large", map[string]string{EnvDefaultTolerance: "256"}},
		{"tolerance negative", map[string]string{EnvDefaultTolerance: "-1"}},
		{"tolerance not a number", map[string]string{EnvDefaultTolerance: "ten"}},
		{"max pixels negative", map[string]string{EnvMaxPixels: "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# paint bucket settings\n"+
			EnvDefaultTolerance+"=77\n"+
			"export "+EnvMaxPixels+"=1024\n"), 0o644))

	t.Setenv(EnvFile, path)
	t.Setenv(EnvDefaultTolerance, "")
	t.Setenv(EnvMaxPixels, "")
	// godotenv never overrides variables that are already set, even to "".
	os.Unsetenv(EnvDefaultTolerance)
	os.Unsetenv(EnvMaxPixels)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint8(77), cfg.DefaultTolerance)
	assert.Equal(t, int64(1024), cfg.MaxPixels)
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(EnvDefaultTolerance+"=77\n"), 0o644))

	t.Setenv(EnvFile, path)
	t.Setenv(EnvDefaultTolerance, "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint8(5), cfg.DefaultTolerance)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "absent.env"))

	_, err := Load()
	assert.NoError(t, err)
}
