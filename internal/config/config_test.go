package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9000, "redis_addr": "redis:6379", "log_level": "debug"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv_OverridesFileValues(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("REDIS_ADDR", "envhost:6379")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := Config{Port: 8080, RedisAddr: "filehost:6379", LogLevel: "info"}
	cfg.FromEnv()

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "envhost:6379", cfg.RedisAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFromEnv_IgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Config{Port: 8080}
	cfg.FromEnv()

	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Default()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RequiresABackend(t *testing.T) {
	cfg := Config{Port: 8080}
	assert.Error(t, cfg.Validate())

	cfg.DatabaseURL = "postgres://localhost/prep"
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "localhost:6379", merged.RedisAddr)
	assert.Equal(t, "debug", merged.LogLevel)
	assert.Equal(t, "console", merged.LogFormat)
}

func TestMergeWithDefaults_DatabaseURLSuppressesRedisDefault(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://localhost/prep"}
	merged := cfg.MergeWithDefaults(Default())

	assert.Empty(t, merged.RedisAddr)
	assert.Equal(t, "postgres://localhost/prep", merged.DatabaseURL)
}
