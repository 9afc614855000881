package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_url": "http://render.internal:5001/api",
		"timeout_seconds": 45,
		"output_dir": "out",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://render.internal:5001/api", cfg.APIURL)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "api_url: http://localhost:9000\ntimeout_seconds: 10\n"

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.APIURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("api_url: [unclosed"), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidURL(t *testing.T) {
	cfg := &Config{APIURL: "not a url"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "APIURL")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TimeoutSeconds")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	empty := &Config{}
	assert.NoError(t, empty.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		APIURL: "http://custom:8000",
	}

	merged := partial.MergeWithDefaults(Default())

	// Custom values should be preserved
	assert.Equal(t, "http://custom:8000", merged.APIURL)

	// Default values should fill in empty fields
	assert.Equal(t, DefaultTimeoutSeconds, merged.TimeoutSeconds)
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
	assert.False(t, merged.Verbose)
}

func TestMergeWithDefaults_Verbose(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{Verbose: true})
	assert.True(t, merged.Verbose)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env-host/api")
	t.Setenv(EnvTimeout, "12s")
	t.Setenv(EnvOutputDir, "/tmp/resumes")

	cfg := FromEnv()
	assert.Equal(t, "http://env-host/api", cfg.APIURL)
	assert.Equal(t, 12, cfg.TimeoutSeconds)
	assert.Equal(t, "/tmp/resumes", cfg.OutputDir)
}

func TestFromEnv_PlainSeconds(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvTimeout, "20")

	cfg := FromEnv()
	assert.Empty(t, cfg.APIURL)
	assert.Equal(t, 20, cfg.TimeoutSeconds)
}

func TestTimeout(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	cfg.TimeoutSeconds = 5
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}
