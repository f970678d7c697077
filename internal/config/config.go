package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the reader policy and output settings
type Config struct {
	// StrictFlags rejects unknown inode flag bits; when false they are
	// stripped and logged.
	StrictFlags bool `mapstructure:"strict_flags"`

	// EnforcePinExclusivity turns the advisory tiering check into an error.
	EnforcePinExclusivity bool `mapstructure:"enforce_pin_exclusivity"`

	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`
}

// Keys under which the settings are stored
const (
	KeyStrictFlags           = "strict_flags"
	KeyEnforcePinExclusivity = "enforce_pin_exclusivity"
	KeyLogLevel              = "log_level"
	KeyOutputFormat          = "output_format"
)

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStrictFlags, true)
	v.SetDefault(KeyEnforcePinExclusivity, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyOutputFormat, "table")
}

// New creates a viper instance that searches the usual config locations and
// reads APFS_* environment variables. An explicit configFile, when not empty,
// replaces the search.
func New(configFile string) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("apfs-format")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.apfs")
		v.AddConfigPath("/etc/apfs")
	}

	SetDefaults(v)

	v.SetEnvPrefix("APFS")
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and decodes the settings
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings that have a fixed set of values
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("invalid output_format %q: must be table, json or yaml", c.OutputFormat)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
