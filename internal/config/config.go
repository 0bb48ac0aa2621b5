package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Database   string   `mapstructure:"database"`
	Currencies []string `mapstructure:"currencies"`
}

// Load resolves configuration in precedence order: optional TOML file,
// then environment, then defaults. configPath may be empty, in which
// case only environment and defaults apply. The flag layer sits above
// this and is applied by the commands.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("database", "visa.db")
	v.SetDefault("currencies", []string{"USD", "EUR", "RON", "GBP", "CHF"})

	if err := v.BindEnv("database", "VISA_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
