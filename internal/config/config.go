package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Content    ContentConfig    `mapstructure:"content"    validate:"required"`
	Dictionary DictionaryConfig `mapstructure:"dictionary" validate:"required"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=0,lte=31"`
	// GoogleClientID is the OAuth client ID federated sign-in tokens must be issued for.
	// Empty disables the Google sign-in endpoint.
	GoogleClientID string `mapstructure:"google_client_id"`
}

// ContentConfig configures the upstream book content API.
type ContentConfig struct {
	BaseURL        string  `mapstructure:"base_url"        validate:"required,url"`
	CatalogBookIDs []int64 `mapstructure:"catalog_book_ids"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// DictionaryConfig configures the upstream dictionary lookup API.
type DictionaryConfig struct {
	BaseURL        string `mapstructure:"base_url"        validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// VocabularyConfig contains vocabulary policy settings.
type VocabularyConfig struct {
	// FreeTierLimit is the maximum number of distinct saved words for users
	// without a qualifying subscription.
	FreeTierLimit int `mapstructure:"free_tier_limit" validate:"required,gt=0"`
}
