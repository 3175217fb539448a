// Package config loads the application settings from an env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Application
	AppHost     string `envconfig:"APP_HOST" default:"localhost"`
	AppPort     string `envconfig:"APP_PORT" default:"8080"`
	LogLevel    string `envconfig:"APP_LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"APP_LOG_ENCODING" default:"json"`

	// Database
	DBDriver       string `envconfig:"DB_DRIVER" default:"sqlite3"`
	DBDSN          string `envconfig:"DB_DSN" default:"project.db"`
	DBMaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"16"`
	DBMaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"8"`
	DBAutoMigrate  bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	// Sessions
	SessionStore  string        `envconfig:"SESSION_STORE" default:"filesystem"`
	SessionDir    string        `envconfig:"SESSION_DIR" default:"flask_session"`
	SessionName   string        `envconfig:"SESSION_NAME" default:"session"`
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	SessionSecure bool          `envconfig:"SESSION_SECURE" default:"false"`

	// Redis session backend
	RedisHost         string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort         int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	RedisPoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
}

// Load reads the env file at path, if it exists, and decodes the environment
// into a Config. Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SessionStore {
	case "filesystem", "cookie", "redis":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

// RedisAddr is the address of the Redis session backend.
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}
