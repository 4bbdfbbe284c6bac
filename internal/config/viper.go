package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level      string `mapstructure:"level" yaml:"level"`
		Format     string `mapstructure:"format" yaml:"format"`
		Output     string `mapstructure:"output" yaml:"output"`
		DefaultTag string `mapstructure:"default_tag" yaml:"default_tag"`
	} `mapstructure:"log" yaml:"log"`
}

// Accepted values for log.format and log.output.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "LOGCOMPAT"

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from the usual locations, then LOGCOMPAT_*
// environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile behaves like InitializeConfig but reads the given
// file instead of searching for config.yaml. A missing explicit file is an
// error; a missing searched file is not.
func InitializeConfigFromFile(path string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.logcompat")
		v.AddConfigPath(".logcompat")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "trace")
	v.SetDefault("log.format", FormatText)
	v.SetDefault("log.output", OutputStderr)
	v.SetDefault("log.default_tag", "LogCompat")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &ValidationError{Key: "log.level", Value: config.Log.Level, Reason: "unknown log level"}
	}

	if config.Log.Format != FormatText && config.Log.Format != FormatJSON {
		return &ValidationError{Key: "log.format", Value: config.Log.Format, Reason: "must be 'text' or 'json'"}
	}

	if config.Log.Output != OutputStderr && config.Log.Output != OutputStdout {
		return &ValidationError{Key: "log.output", Value: config.Log.Output, Reason: "must be 'stderr' or 'stdout'"}
	}

	if strings.TrimSpace(config.Log.DefaultTag) == "" {
		return &ValidationError{Key: "log.default_tag", Value: config.Log.DefaultTag, Reason: "must not be empty"}
	}

	return nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

// Writer picks the configured output stream.
func (c *Config) Writer(stdout, stderr io.Writer) io.Writer {
	if c.Log.Output == OutputStdout {
		return stdout
	}
	return stderr
}

// ConfigureLoggingFromConfig builds the logrus logger the command line uses
// for its own diagnostics.
func ConfigureLoggingFromConfig(config *Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// Validate checks the configuration, e.g. after command line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}
