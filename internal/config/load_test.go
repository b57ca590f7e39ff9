package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				_ = os.Unsetenv(name)
			} else {
				_ = os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"SEIMEI_SERVER_PORT":       "",
		"SEIMEI_SERVER_LOG_LEVEL":  "",
		"SEIMEI_DICTIONARY_DRIVER": "",
		"SEIMEI_CONFIG_FILE":       "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "memory", cfg.Dictionary.Driver)
	assert.Equal(t, WeightsConfig{
		Polarity: 0.20, Element: 0.25, Fortune: 0.30, Special: 0.15, Taboo: 0.10,
	}, cfg.Scoring.Weights)
	assert.Equal(t, 5, cfg.Scoring.MinScore)
	assert.Equal(t, 100, cfg.Scoring.MaxScore)
	assert.Equal(t, 50, cfg.Scoring.TabooFairThreshold)
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"SEIMEI_SERVER_PORT":              "9090",
		"SEIMEI_SERVER_LOG_LEVEL":         "debug",
		"SEIMEI_DICTIONARY_DRIVER":        "sqlite",
		"SEIMEI_DICTIONARY_DSN":           "file:seimei.db",
		"SEIMEI_SCORING_WEIGHTS_TABOO":    "0.5",
		"SEIMEI_SCORING_MIN_SCORE":        "0",
		"SEIMEI_SCORING_TABOO_FAIR_THRESHOLD": "60",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "sqlite", cfg.Dictionary.Driver)
	assert.Equal(t, "file:seimei.db", cfg.Dictionary.DSN)
	assert.Equal(t, 0.5, cfg.Scoring.Weights.Taboo)
	assert.Equal(t, 0, cfg.Scoring.MinScore)
	assert.Equal(t, 60, cfg.Scoring.TabooFairThreshold)
}

// TestLoadFromFile verifies that an explicit config file is read and that
// environment variables still win over it.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seimei.yaml")
	content := []byte(`server:
  port: 7070
  log_level: warn
dictionary:
  driver: memory
  seed_file: extra.yaml
scoring:
  weights:
    fortune: 0.6
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cleanup := setupEnv(t, map[string]string{
		"SEIMEI_CONFIG_FILE":      path,
		"SEIMEI_SERVER_LOG_LEVEL": "error",
		"SEIMEI_SERVER_PORT":      "",
	})
	defer cleanup()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel)
	assert.Equal(t, "extra.yaml", cfg.Dictionary.SeedFile)
	assert.Equal(t, 0.6, cfg.Scoring.Weights.Fortune)
	assert.Equal(t, 0.25, cfg.Scoring.Weights.Element)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithViper(v)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithViperOverrides(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{"SEIMEI_CONFIG_FILE": ""})
	defer cleanup()

	v := viper.New()
	v.Set("dictionary.driver", "pgx")
	v.Set("dictionary.dsn", "postgres://seimei@localhost/seimei")

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "pgx", cfg.Dictionary.Driver)
	assert.Equal(t, "postgres://seimei@localhost/seimei", cfg.Dictionary.DSN)
}

// TestLoadValidationErrors verifies that Load correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"SEIMEI_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"SEIMEI_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Unknown dictionary driver",
			envVars: map[string]string{"SEIMEI_DICTIONARY_DRIVER": "redis"},
		},
		{
			name:    "SQL driver without DSN",
			envVars: map[string]string{"SEIMEI_DICTIONARY_DRIVER": "sqlite"},
		},
		{
			name:    "Negative weight",
			envVars: map[string]string{"SEIMEI_SCORING_WEIGHTS_POLARITY": "-0.1"},
		},
		{
			name: "All weights zero",
			envVars: map[string]string{
				"SEIMEI_SCORING_WEIGHTS_POLARITY": "0",
				"SEIMEI_SCORING_WEIGHTS_ELEMENT":  "0",
				"SEIMEI_SCORING_WEIGHTS_FORTUNE":  "0",
				"SEIMEI_SCORING_WEIGHTS_SPECIAL":  "0",
				"SEIMEI_SCORING_WEIGHTS_TABOO":    "0",
			},
		},
		{
			name: "Inverted score bounds",
			envVars: map[string]string{
				"SEIMEI_SCORING_MIN_SCORE": "80",
				"SEIMEI_SCORING_MAX_SCORE": "40",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
