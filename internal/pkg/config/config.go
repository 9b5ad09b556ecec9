package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	Workers  int    `env:"WORKERS,   default=4"`

	// AccessTokenSecret signs and verifies every access token.
	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET, required"`
	TokenTTL          time.Duration `env:"TOKEN_TTL, default=1h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Mailgun   MailgunConfig
	Braintree BraintreeConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bistroDB"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type MailgunConfig struct {
	Domain   string `env:"MAILGUN_DOMAIN"`
	APIKey   string `env:"MAILGUN_API_KEY"`
	From     string `env:"MAILGUN_FROM"`
	EURegion bool   `env:"MAILGUN_EU_REGION, default=false"`
}

// Enabled reports whether confirmation emails can be sent.
func (m MailgunConfig) Enabled() bool {
	return m.Domain != "" && m.APIKey != ""
}

type BraintreeConfig struct {
	Environment string `env:"BRAINTREE_ENVIRONMENT, default=sandbox"`
	MerchantID  string `env:"BRAINTREE_MERCHANT_ID"`
	PublicKey   string `env:"BRAINTREE_PUBLIC_KEY"`
	PrivateKey  string `env:"BRAINTREE_PRIVATE_KEY"`
	Currency    string `env:"PAYMENT_CURRENCY, default=usd"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	switch c.Braintree.Environment {
	case "sandbox", "production":
	default:
		return fmt.Errorf("BRAINTREE_ENVIRONMENT must be sandbox or production, got %q", c.Braintree.Environment)
	}
	return nil
}
