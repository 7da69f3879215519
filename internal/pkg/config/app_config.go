package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the configuration of the REST API server
type RestConfig struct {
	Port   string         `mapstructure:"port" validate:"required,numeric"`
	Logger LoggerSettings `mapstructure:"logger"`
	Cipher CipherSettings `mapstructure:"cipher"`
}

// CliConfig holds the configuration of the command-line tool
type CliConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Cipher CipherSettings `mapstructure:"cipher"`
}

// Validate checks the REST config and every nested settings block
func (c *RestConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}

// Validate checks every nested settings block of the CLI config
func (c *CliConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}

// InitializeRestConfig reads the REST config from the YAML file at path,
// applies AES_* environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()
	v.SetDefault("port", "8080")

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// InitializeCliConfig reads the CLI config from path. An empty path or a
// missing file yields the defaults, still subject to environment overrides
func InitializeCliConfig(path string) (*CliConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg CliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("cipher.key_size", DefaultKeySize)
	v.SetDefault("cipher.padding", PaddingPKCS7)
	v.SetDefault("cipher.strict_padding", false)
	v.SetDefault("cipher.trace_rounds", false)

	return v
}
