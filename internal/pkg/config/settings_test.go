//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, LogLevelInfo, settings.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, settings.Logger.LogType)
	assert.Equal(t, DefaultKeySize, settings.Crypto.KeySize)
	assert.Equal(t, DefaultPadding, settings.Crypto.Padding)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packed-aes.yaml")
	content := []byte(`logger:
  log_level: debug
  log_type: console
crypto:
  key_size: 16
  padding: none
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, settings.Logger.LogLevel)
	assert.Equal(t, 16, settings.Crypto.KeySize)
	assert.Equal(t, "none", settings.Crypto.Padding)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("PACKED_AES_LOGGER_LOG_LEVEL", "warning")
	t.Setenv("PACKED_AES_CRYPTO_KEY_SIZE", "24")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, LogLevelWarning, settings.Logger.LogLevel)
	assert.Equal(t, 24, settings.Crypto.KeySize)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid key size", func(t *testing.T) {
		t.Setenv("PACKED_AES_CRYPTO_KEY_SIZE", "20")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("invalid log type", func(t *testing.T) {
		t.Setenv("PACKED_AES_LOGGER_LOG_TYPE", "syslog")
		_, err := Load("")
		assert.Error(t, err)
	})
}
