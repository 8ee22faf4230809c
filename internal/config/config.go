package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type SMTPConfig struct {
	Email    string `env:"SMTP_EMAIL"`
	Password string `env:"SMTP_PASSWORD"`
	Host     string `env:"SMTP_HOST,default=smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT,default=587"`
}

// Configured reports whether both account credentials are present.
func (s SMTPConfig) Configured() bool {
	return strings.TrimSpace(s.Email) != "" && strings.TrimSpace(s.Password) != ""
}

func (s SMTPConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type Config struct {
	Port            string        `env:"PORT,default=3000"`
	Env             string        `env:"NODE_ENV,default=development"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	BodyLimitBytes  int64         `env:"BODY_LIMIT_BYTES,default=10485760"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES,default=127.0.0.1,::1,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=15s"`
	MailDriver      string        `env:"MAIL_DRIVER,default=smtp"`
	SMTP            SMTPConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == ProductionEnv
}

// OriginAllowed applies the cross-origin policy: allow-listed origins always
// pass, anything else passes only outside production.
func (c *Config) OriginAllowed(origin string) bool {
	return slices.Contains(AllowedOrigins, origin) || !c.IsProduction()
}

// LoadDotEnv loads the given env files (".env" when none are named) into the
// process environment. A missing file is reported as loaded=false without an
// error; a file that cannot be parsed is an error.
func LoadDotEnv(filenames ...string) (loaded bool, err error) {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load env file: %w", err)
	}
	return true, nil
}

// Load reads the process environment. Call LoadDotEnv first to pick up a
// local .env file.
func Load(ctx context.Context) (*Config, error) {
	return LoadWithLookuper(ctx, envconfig.OsLookuper())
}

// LoadWithLookuper processes configuration from the given lookuper,
// to help with testing.
func LoadWithLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if strings.TrimSpace(cfg.Port) == "" {
		errors = append(errors, "PORT is required")
	} else if port, err := strconv.Atoi(cfg.Port); err != nil {
		errors = append(errors, "PORT must be a valid number")
	} else if port < 1 || port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	if cfg.SMTP.Port < 1 || cfg.SMTP.Port > 65535 {
		errors = append(errors, "SMTP_PORT must be between 1 and 65535")
	}

	if strings.TrimSpace(cfg.SMTP.Host) == "" {
		errors = append(errors, "SMTP_HOST is required")
	}

	if cfg.BodyLimitBytes <= 0 {
		errors = append(errors, "BODY_LIMIT_BYTES must be positive")
	}

	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, "SHUTDOWN_TIMEOUT must be positive")
	}

	if cfg.MailDriver != MailDriverSMTP && cfg.MailDriver != MailDriverStub {
		errors = append(errors, "MAIL_DRIVER must be smtp or stub")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
