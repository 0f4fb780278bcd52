package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LISTEN_ADDR", "STATIC_DIR", "METADATA_URL", "MOCK_LISTEN_ADDR", "MOCK_INSTANCE_ID"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	c, err := Load()
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	require.NoError(t, c.ValidateMock())

	assert.Equal(t, ":5000", c.ListenAddr)
	assert.Equal(t, ".", c.StaticDir)
	assert.Equal(t, "http://169.254.169.254", c.Metadata.BaseURL)
	assert.Equal(t, 2*time.Second, c.Metadata.Timeout)
	assert.Equal(t, 21600, c.Metadata.TokenTTLSeconds)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
listen_addr: ":8080"
metadata:
  timeout: 500ms
mock:
  instance_id: i-file
  rate_limit: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("METADATA_URL", "http://127.0.0.1:1338")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, 500*time.Millisecond, c.Metadata.Timeout)
	assert.Equal(t, 21600, c.Metadata.TokenTTLSeconds, "keys absent from file keep defaults")
	assert.Equal(t, "http://127.0.0.1:1338", c.Metadata.BaseURL)
	assert.Equal(t, "i-file", c.Mock.InstanceID)
	assert.Equal(t, 10, c.Mock.RateLimit)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metadata:\n  token_ttl_seconds: 99999\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)

	c, err := Load()
	require.NoError(t, err)

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TokenTTLSeconds")
	assert.NoError(t, c.ValidateMock())
}

func TestValidate_MockSectionDoesNotAffectWeb(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mock:\n  instance_id: \"\"\n  rate_limit: -1\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)

	c, err := Load()
	require.NoError(t, err)

	assert.NoError(t, c.Validate())
	err = c.ValidateMock()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RateLimit")
}

func TestLoad_BrokenYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [oops"), 0o644))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
