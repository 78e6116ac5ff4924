package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is the development fallback signing secret, used when
// JWT_SECRET is unset. main warns whenever it is in effect.
const DefaultJWTSecret = "spiderhome-dev-secret-change-me"

// Config is the process-wide configuration, parsed from the environment once
// in main and passed into services. Defaults are development fallbacks only;
// JWT_SECRET in particular must be overridden in production.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Either a full DSN/URL (MYSQL_URL / DATABASE_URL) or discrete DB_* parts.
	MySQLURL    string `env:"MYSQL_URL"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER" envDefault:"root"`
	DBPass      string `env:"DB_PASS" envDefault:""`
	DBHost      string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort      string `env:"DB_PORT" envDefault:"3306"`
	DBName      string `env:"DB_NAME" envDefault:"spiderhome_db"`

	JWTSecret string `env:"JWT_SECRET"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin_spiderhome"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"spiderhome2024"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
	}
	return cfg, nil
}
