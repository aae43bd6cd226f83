package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Public authentication schemes.
const (
	SchemeNone         = "none"
	SchemeSharedSecret = "shared_secret"
)

// Relational drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// devJWTSecret signs tokens outside production when JWT_SECRET is unset.
const devJWTSecret = "dev-only-insecure-jwt-secret"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret        string `env:"JWT_SECRET"`
	APIToken         string `env:"API_TOKEN"`
	PublicAuthScheme string `env:"PUBLIC_AUTH_SCHEME, default=none"`

	DB    DBConfig
	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER,   default=postgres"`
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,     default=marketplace"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
	Path     string `env:"DB_PATH,     default=data/marketplace.db"`
}

// MongoConfig enables the audit trail when URI is set.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=marketplace_audit"`
}

// RedisConfig enables token revocation when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// AdminConfig describes the bootstrap admin account.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
	Email    string `env:"ADMIN_EMAIL"`
}

func (a AdminConfig) Enabled() bool { return a.Username != "" }

// Load reads configuration from environment variables using go-envconfig and
// validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = devJWTSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.PublicAuthScheme {
	case SchemeNone:
	case SchemeSharedSecret:
		if c.APIToken == "" {
			errs = append(errs, errors.New("PUBLIC_AUTH_SCHEME=shared_secret requires API_TOKEN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PUBLIC_AUTH_SCHEME %q", c.PublicAuthScheme))
	}

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver))
	}

	if c.Admin.Enabled() && (c.Admin.Password == "" || c.Admin.Email == "") {
		errs = append(errs, errors.New("ADMIN_USERNAME requires ADMIN_PASSWORD and ADMIN_EMAIL"))
	}

	return errors.Join(errs...)
}

// DSN returns the connection string for the configured driver.
func (d DBConfig) DSN() string {
	if d.Driver == DriverSQLite {
		if strings.Contains(d.Path, "?") {
			return d.Path
		}
		return d.Path + "?_foreign_keys=on"
	}
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
