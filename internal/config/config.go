package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AuthDevelopment = "development"
	AuthJWT         = "jwt"
	AuthRemote      = "remote"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`
	AppName string `mapstructure:"APP_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBDSN          string `mapstructure:"DB_DSN"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	AuthMode         string `mapstructure:"AUTH_MODE"`
	JWTSigningKey    string `mapstructure:"JWT_SIGNING_KEY"`
	JWTIssuer        string `mapstructure:"JWT_ISSUER"`
	JWTAudience      string `mapstructure:"JWT_AUDIENCE"`
	AuthRemoteURL    string `mapstructure:"AUTH_REMOTE_URL"`
	AuthRemoteAPIKey string `mapstructure:"AUTH_REMOTE_API_KEY"`

	// mask | propagate
	LookupErrors string `mapstructure:"LOOKUP_ERRORS"`
	CacheSize    int    `mapstructure:"CACHE_SIZE"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME",
	"LOG_LEVEL", "LOG_FORMAT",
	"DB_DRIVER", "DB_DSN", "SQLITE_PATH", "DB_MAX_OPEN_CONNS",
	"AUTH_MODE", "JWT_SIGNING_KEY", "JWT_ISSUER", "JWT_AUDIENCE",
	"AUTH_REMOTE_URL", "AUTH_REMOTE_API_KEY",
	"LOOKUP_ERRORS", "CACHE_SIZE",
	"READ_TIMEOUT", "WRITE_TIMEOUT",
}

// Load lee env vars y, si existe, un archivo .env en el directorio actual.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
	}
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "petclinic-api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_DRIVER", "")
	v.SetDefault("SQLITE_PATH", "petclinic.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("AUTH_MODE", "")
	v.SetDefault("LOOKUP_ERRORS", "mask")
	v.SetDefault("CACHE_SIZE", 16)
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional, pero si existe tiene que parsear.
	if envFile != "" {
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

func (c *Config) normalize() {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver == "" {
		if strings.TrimSpace(c.DBDSN) != "" {
			c.DBDriver = DriverPostgres
		} else {
			c.DBDriver = DriverMemory
		}
	}

	c.AuthMode = strings.ToLower(strings.TrimSpace(c.AuthMode))
	if c.AuthMode == "" {
		switch {
		case c.JWTSigningKey != "":
			c.AuthMode = AuthJWT
		case c.AuthRemoteURL != "":
			c.AuthMode = AuthRemote
		default:
			c.AuthMode = AuthDevelopment
		}
	}

	c.LookupErrors = strings.ToLower(strings.TrimSpace(c.LookupErrors))
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Validate rechaza combinaciones inconsistentes antes de levantar el server.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN is required when DB_DRIVER is %q", DriverPostgres)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER is %q", DriverSQLite)
		}
	default:
		return fmt.Errorf("DB_DRIVER must be memory, postgres or sqlite, got %q", c.DBDriver)
	}

	switch c.AuthMode {
	case AuthDevelopment:
		if !c.IsDev() {
			return fmt.Errorf("AUTH_MODE=development is only allowed when ENV=development")
		}
	case AuthJWT:
		if c.JWTSigningKey == "" {
			return fmt.Errorf("JWT_SIGNING_KEY is required when AUTH_MODE is %q", AuthJWT)
		}
	case AuthRemote:
		if c.AuthRemoteURL == "" {
			return fmt.Errorf("AUTH_REMOTE_URL is required when AUTH_MODE is %q", AuthRemote)
		}
	default:
		return fmt.Errorf("AUTH_MODE must be development, jwt or remote, got %q", c.AuthMode)
	}

	switch c.LookupErrors {
	case "mask", "propagate":
	default:
		return fmt.Errorf("LOOKUP_ERRORS must be mask or propagate, got %q", c.LookupErrors)
	}

	if c.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive, got %d", c.CacheSize)
	}

	return nil
}
