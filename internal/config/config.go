package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Session  SessionConfig  `mapstructure:"session"  validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// SessionConfig contains session lifecycle and cookie settings.
type SessionConfig struct {
	// RedisURL locates the session store backend.
	RedisURL string `mapstructure:"redis_url" validate:"required,url"`

	// CookieName is the name of the session cookie sent to clients.
	CookieName string `mapstructure:"cookie_name" validate:"required"`

	// MaxAgeMinutes is the session lifetime. After this the session is
	// destroyed automatically with no user action.
	MaxAgeMinutes int `mapstructure:"max_age_minutes" validate:"required,gt=0"`

	// CookieSecure controls the Secure flag on the session cookie.
	// Off by default for local development; production deployments
	// should turn it on.
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	// BcryptCost is the bcrypt work factor used when hashing passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}
