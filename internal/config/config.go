package config

// Config holds all application configuration.
// It is constructed once at startup and injected into the services that
// need it; nothing reads ambient process state after Load returns.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Media    MediaConfig    `mapstructure:"media"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains document-store connection settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"  validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains token-signing settings. Tokens are stateless; the
// lifetime is the only invalidation mechanism.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// MediaConfig contains credentials for the external image host.
type MediaConfig struct {
	CloudName string `mapstructure:"cloud_name" validate:"required"`
	APIKey    string `mapstructure:"api_key"    validate:"required"`
	APISecret string `mapstructure:"api_secret" validate:"required"`
	Folder    string `mapstructure:"folder"`
}
