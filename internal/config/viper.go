// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fjacquet/fincontroller/internal/validation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FINCTL_LOG_LEVEL.
const EnvPrefix = "FINCTL"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// StorageConfig controls where the collection is persisted.
type StorageConfig struct {
	File    string `mapstructure:"file" yaml:"file"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// CSVConfig controls CSV export.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// ReportConfig controls statistics rendering.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then FINCTL_ environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fincontroller")
	v.AddConfigPath(".fincontroller")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
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

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Storage: StorageConfig{File: "transactions.json", Enabled: true},
		CSV:     CSVConfig{Delimiter: ","},
		Report:  ReportConfig{Format: "text"},
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("storage.file", d.Storage.File)
	v.SetDefault("storage.enabled", d.Storage.Enabled)

	v.SetDefault("csv.delimiter", d.CSV.Delimiter)

	v.SetDefault("report.format", d.Report.Format)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	if config.Storage.Enabled && strings.TrimSpace(config.Storage.File) == "" {
		return fmt.Errorf("storage.file required when storage is enabled")
	}

	return nil
}

// Validate re-checks a configuration after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ','
}
