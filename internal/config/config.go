package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"8080"`
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`

	// Secret peppers password hashes; AuthTokenSecret signs auth tokens.
	Secret           string        `env:"SECRET,required"`
	BcryptHasherCost int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	AuthTokenSecret  string        `env:"AUTH_TOKEN_SECRET,required"`
	AuthTokenTTL     time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	ResetTokenTTLMinutes int     `env:"RESET_TOKEN_TTL_MINUTES" envDefault:"30"`
	PasswordResetBaseURL url.URL `env:"PASSWORD_RESET_BASE_URL,required"`
	MailSender           string  `env:"MAIL_SENDER,required"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	LogFile   string   `env:"LOG_FILE"`
	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

// DatabaseConfig is the subset of Config needed to run migrations.
type DatabaseConfig struct {
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
}

func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load(".env")
	config := &DatabaseConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not parse database config: %w", err)
	}
	return config, nil
}

func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load(".env")
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, opts); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if config.ResetTokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("RESET_TOKEN_TTL_MINUTES must be positive, got %d", config.ResetTokenTTLMinutes)
	}
	if config.AuthTokenSecret == config.Secret {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET must differ from SECRET")
	}
	if config.AuthTokenTTL <= 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", config.AuthTokenTTL)
	}
	return config, nil
}
