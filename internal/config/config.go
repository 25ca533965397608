package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"watchthis/sharing/internal/auth"
	"watchthis/sharing/internal/database"
)

// Config holds the application configuration.
type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	DatabaseDriver       string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	DatabaseMaxOpenConns int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	DatabaseMaxIdleConns int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`

	UserServiceURL string        `mapstructure:"USER_SERVICE_URL"`
	AuthMode       string        `mapstructure:"AUTH_MODE"`
	AuthTimeout    time.Duration `mapstructure:"AUTH_TIMEOUT"`

	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	TrustedProxies     string        `mapstructure:"TRUSTED_PROXIES"`
	RateLimitRPS       float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int           `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"PORT":                    "8372",
	"ENVIRONMENT":             "development",
	"LOG_LEVEL":               "info",
	"DATABASE_DRIVER":         string(database.DriverPostgres),
	"DATABASE_URL":            "postgres://localhost:5432/sharing_service?sslmode=disable",
	"DATABASE_MAX_OPEN_CONNS": 25,
	"DATABASE_MAX_IDLE_CONNS": 5,
	"USER_SERVICE_URL":        "http://localhost:8583",
	"AUTH_MODE":               string(auth.ModeSession),
	"AUTH_TIMEOUT":            "5s",
	"SHUTDOWN_TIMEOUT":        "10s",
	"CORS_ALLOWED_ORIGINS":    "",
	"TRUSTED_PROXIES":         "",
	"RATE_LIMIT_RPS":          20,
	"RATE_LIMIT_BURST":        40,
}

// Load reads the configuration from a .env file in dir (if any) and the
// environment. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	switch database.Driver(c.DatabaseDriver) {
	case database.DriverPostgres, database.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	switch auth.Mode(c.AuthMode) {
	case auth.ModeSession, auth.ModeBearer:
	default:
		errs = append(errs, fmt.Errorf("AUTH_MODE must be session or bearer, got %q", c.AuthMode))
	}
	if c.UserServiceURL == "" {
		errs = append(errs, errors.New("USER_SERVICE_URL is required"))
	}
	if c.AuthTimeout <= 0 {
		errs = append(errs, errors.New("AUTH_TIMEOUT must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Database returns the connection settings for database.Open.
func (c *Config) Database() database.Config {
	return database.Config{
		Driver:       database.Driver(c.DatabaseDriver),
		URL:          c.DatabaseURL,
		MaxOpenConns: c.DatabaseMaxOpenConns,
		MaxIdleConns: c.DatabaseMaxIdleConns,
	}
}

// UserService returns the identity lookup settings.
func (c *Config) UserService() auth.UserServiceConfig {
	return auth.UserServiceConfig{
		BaseURL: c.UserServiceURL,
		Mode:    auth.Mode(c.AuthMode),
		Timeout: c.AuthTimeout,
	}
}

// CORSOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// Proxies splits TRUSTED_PROXIES (IPs or CIDRs) on commas.
func (c *Config) Proxies() []string {
	return splitList(c.TrustedProxies)
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
