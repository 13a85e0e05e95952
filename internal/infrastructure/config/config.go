package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// FrontendURL is the base URL of the Angular front end, used in
	// password-reset links and as the default CORS origin.
	FrontendURL string   `env:"FRONTEND_URL, default=http://localhost:4200"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:4200"`

	Auth    AuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Uploads UploadsConfig
}

type AuthConfig struct {
	// JWTSecret signs every session token. There is no default: a missing
	// secret is a deployment error and Load panics on it.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"JWT_TTL,    default=24h"`

	CookieName      string `env:"COOKIE_NAME,       default=jwt"`
	CookieSecure    bool   `env:"COOKIE_SECURE,     default=true"`
	CookieCrossSite bool   `env:"COOKIE_CROSS_SITE, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=plateforme_owod"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	// From is the sender address on outbound mail; ContactTo receives
	// contact-form submissions.
	From      string `env:"MAIL_FROM,    default=no-reply@owod.local"`
	ContactTo string `env:"MAIL_CONTACT, default=contact@owod.local"`
}

type UploadsConfig struct {
	// Dir is where uploaded images land on disk; BaseURL is the public
	// prefix they are served under.
	Dir     string `env:"UPLOAD_DIR,      default=./uploads"`
	BaseURL string `env:"UPLOAD_BASE_URL, default=http://localhost:8080/uploads"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values are a startup failure, not a runtime condition.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
