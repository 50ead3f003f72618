package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/price-projection/internal/config"
	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
	assert.Equal(t, defaultReadTimeout, cfg.ReadTimeoutDuration())
	assert.Equal(t, defaultWriteTimeout, cfg.WriteTimeoutDuration())
	assert.Equal(t, defaultShutdownTimeout, cfg.ShutdownTimeoutDuration())
	assert.Equal(t, config.LoggingConfig{}, cfg.Logging)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	contents := []byte(`address: 127.0.0.1:9000
readTimeout: 2s
writeTimeout: 1m
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)
	require.NoError(t, os.WriteFile(path, contents, 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeoutDuration())
	assert.Equal(t, time.Minute, cfg.WriteTimeoutDuration())
	assert.Equal(t, defaultShutdownTimeout, cfg.ShutdownTimeoutDuration())
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: "console", OutputFile: "/tmp/server.log"}, cfg.Logging)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"invalid yaml":     "address: [unclosed",
		"invalid duration": "readTimeout: soon",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}
