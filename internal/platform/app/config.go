package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/trialdesk/trialdesk/pkg/jwtx"
)

type Config struct {
	Issuer string `env:"PLATFORM_ISSUER" envDefault:"trialdesk"`

	// SessionKeyFile points at the Ed25519 session signing key. A fresh
	// key is generated there when the file does not exist, which
	// invalidates all outstanding sessions.
	SessionKeyFile string        `env:"PLATFORM_SESSION_KEY_FILE" envDefault:"session.key"`
	SessionTTL     time.Duration `env:"PLATFORM_SESSION_TTL" envDefault:"12h"`

	DatabaseFile string `env:"PLATFORM_DATABASE_FILE" envDefault:"platform.db"`

	// AllowedOrigins configures CORS for browser frontends.
	AllowedOrigins []string `env:"PLATFORM_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                 int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = jwtx.DefaultSessionTTL
	}

	return cfg, nil
}
