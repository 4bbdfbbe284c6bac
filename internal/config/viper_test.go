package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "trace", config.Log.Level)
	assert.Equal(t, FormatText, config.Log.Format)
	assert.Equal(t, OutputStderr, config.Log.Output)
	assert.Equal(t, "LogCompat", config.Log.DefaultTag)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"LOGCOMPAT_LOG_LEVEL":       "debug",
		"LOGCOMPAT_LOG_FORMAT":      "json",
		"LOGCOMPAT_LOG_OUTPUT":      "stdout",
		"LOGCOMPAT_LOG_DEFAULT_TAG": "Player",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, FormatJSON, config.Log.Format)
	assert.Equal(t, OutputStdout, config.Log.Output)
	assert.Equal(t, "Player", config.Log.DefaultTag)
}

func TestInitializeConfigFromFile(t *testing.T) {
	clearTestEnvVars(t)

	configFile := filepath.Join(t.TempDir(), "logcompat.yaml")
	configContent := `
log:
  level: "warn"
  format: "json"
  default_tag: "FromFile"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	config, err := InitializeConfigFromFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, FormatJSON, config.Log.Format)
	assert.Equal(t, OutputStderr, config.Log.Output)
	assert.Equal(t, "FromFile", config.Log.DefaultTag)
}

func TestInitializeConfig_SearchedConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "error"
  default_tag: "Searched"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "Searched", config.Log.DefaultTag)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	configFile := filepath.Join(t.TempDir(), "logcompat.yaml")
	configContent := `
log:
  level: "warn"
  default_tag: "FromFile"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	// Environment variables override the file
	t.Setenv("LOGCOMPAT_LOG_LEVEL", "error")

	config, err := InitializeConfigFromFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "FromFile", config.Log.DefaultTag)
	assert.Equal(t, FormatText, config.Log.Format)
}

func TestInitializeConfigFromFile_Missing(t *testing.T) {
	clearTestEnvVars(t)

	_, err := InitializeConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeConfig_InvalidEnvironmentValue(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("LOGCOMPAT_LOG_FORMAT", "xml")

	_, err := InitializeConfig()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "log.format", validationErr.Key)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectedKey string
	}{
		{
			name:        "invalid log level",
			modify:      func(c *Config) { c.Log.Level = "loud" },
			expectedKey: "log.level",
		},
		{
			name:        "invalid log format",
			modify:      func(c *Config) { c.Log.Format = "xml" },
			expectedKey: "log.format",
		},
		{
			name:        "invalid log output",
			modify:      func(c *Config) { c.Log.Output = "file" },
			expectedKey: "log.output",
		},
		{
			name:        "blank default tag",
			modify:      func(c *Config) { c.Log.DefaultTag = "  " },
			expectedKey: "log.default_tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modify(config)

			err := validateConfig(config)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.expectedKey, validationErr.Key)
		})
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Key: "log.format", Value: "xml", Reason: "must be 'text' or 'json'"}
	assert.Equal(t, "invalid log.format 'xml': must be 'text' or 'json'", err.Error())
}

func TestConfig_YAML(t *testing.T) {
	out, err := validConfig().YAML()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, *validConfig(), decoded)
	assert.Contains(t, string(out), "default_tag: LogCompat")
}

func TestConfig_Writer(t *testing.T) {
	var stdout, stderr bytes.Buffer
	config := validConfig()

	assert.Same(t, &stderr, config.Writer(&stdout, &stderr))

	config.Log.Output = OutputStdout
	assert.Same(t, &stdout, config.Writer(&stdout, &stderr))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := validConfig()
	config.Log.Level = "debug"
	config.Log.Format = FormatJSON

	var buf bytes.Buffer
	logger := ConfigureLoggingFromConfig(config, &buf)

	assert.Equal(t, logrus.DebugLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok, "formatter should be JSONFormatter")

	logger.Debug("configured")
	assert.Contains(t, buf.String(), "configured")
}

func TestConfigureLoggingFromConfig_TextFormat(t *testing.T) {
	logger := ConfigureLoggingFromConfig(validConfig(), nil)

	assert.Equal(t, logrus.TraceLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok, "formatter should be TextFormatter")
}

func validConfig() *Config {
	config := &Config{}
	config.Log.Level = "trace"
	config.Log.Format = FormatText
	config.Log.Output = OutputStderr
	config.Log.DefaultTag = "LogCompat"
	return config
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"LOGCOMPAT_LOG_LEVEL",
		"LOGCOMPAT_LOG_FORMAT",
		"LOGCOMPAT_LOG_OUTPUT",
		"LOGCOMPAT_LOG_DEFAULT_TAG",
	}

	for _, envVar := range envVars {
		// Register restoration of the original value, then clear it
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
