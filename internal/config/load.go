package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// SHOP_ prefix with underscores for nesting (e.g. SHOP_AUTH_JWT_SECRET)
// and take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("database.name", "rk-shop")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("media.folder", "project05-rk-shop")

	// Secrets have no usable default, but viper only resolves env values
	// for keys it already knows about. Empty defaults register the keys;
	// validation rejects them if they stay empty.
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("media.cloud_name", "")
	v.SetDefault("media.api_key", "")
	v.SetDefault("media.api_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment can carry
		// everything. Any other read failure is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
