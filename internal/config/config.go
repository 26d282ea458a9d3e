package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds ambient process settings. Configuration never alters the
// on-disk repository contract.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Workdir   string `mapstructure:"workdir"`
}

// Load reads configuration from GVT_* environment variables and an
// optional $HOME/.gvt.yaml file. The working directory itself is never
// read for configuration, it belongs to the user.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "error")
	v.SetDefault("log_format", "console")
	v.SetDefault("workdir", "")

	v.SetConfigName(".gvt")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("GVT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
