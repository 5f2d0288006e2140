// Package config provides environment-based configuration for the school
// management service.
//
// Configuration is loaded from environment variables using Viper, with sensible
// defaults for development. This package handles database connection settings,
// logging levels, server ports, session signing, and login rate limiting.
//
// # Environment Variables
//
//   - DB_TYPE: Database type (sqlite, postgres, mysql). Default: sqlite
//   - DSN: Database connection string. Default: school.db
//   - SKIP_AUTO_MIGRATE: Skip automatic database migrations. Default: false
//   - LOG_LEVEL: Logging level (debug, info, warn, error). Default: info
//   - PORT: HTTP server port. Default: 8080
//   - SESSION_SECRET: HMAC secret for JWT sessions. Empty selects database sessions.
//   - SESSION_TTL_MINUTES: Session lifetime in minutes. Default: 720
//   - REDIS_ADDR: Redis address for the distributed login rate limiter.
//     Empty selects the in-memory limiter.
//   - LOGIN_RATE_LIMIT: Login attempts allowed per window. Default: 10
//   - LOGIN_RATE_WINDOW_SECONDS: Rate limit window in seconds. Default: 60
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DBType          string `mapstructure:"DB_TYPE"` // sqlite, postgres, mysql
	DSN             string `mapstructure:"DSN"`
	SkipAutoMigrate bool   `mapstructure:"SKIP_AUTO_MIGRATE"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	Port            int    `mapstructure:"PORT"`

	SessionSecret     string `mapstructure:"SESSION_SECRET"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	RedisAddr              string `mapstructure:"REDIS_ADDR"`
	LoginRateLimit         int    `mapstructure:"LOGIN_RATE_LIMIT"`
	LoginRateWindowSeconds int    `mapstructure:"LOGIN_RATE_WINDOW_SECONDS"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("DB_TYPE", "sqlite")
	viper.SetDefault("DSN", "school.db") // Default to sqlite if not provided
	viper.SetDefault("SKIP_AUTO_MIGRATE", false)
	viper.SetDefault("SESSION_TTL_MINUTES", 720)
	viper.SetDefault("LOGIN_RATE_LIMIT", 10)
	viper.SetDefault("LOGIN_RATE_WINDOW_SECONDS", 60)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
