package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultExpiringWindowDays is how far ahead the expiring-grants view looks
// when the caller does not pass a window.
const DefaultExpiringWindowDays = 30

// DevSigningKey signs session tokens outside production when
// SESSION_SIGNING_KEY is unset.
const DevSigningKey = "dev-signing-key-change-in-production"

// Server captures process-level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string

	SessionSigningKey string
	SessionTTL        time.Duration

	ExpiringWindowDays int
	TrustedProxies     string

	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig

	LoginLockout LoginLockoutConfig

	BootstrapAdmin BootstrapAdmin
	SeedDemoData   bool
}

// DatabaseConfig selects PostgreSQL; an empty URL selects in-memory stores.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

// RedisConfig selects the Redis session revocation list; an empty URL keeps it in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig enables event fan-out; empty Brokers disables it.
type KafkaConfig struct {
	Brokers     string
	EventsTopic string
}

// LoginLockoutConfig blocks a username and client address after repeated
// failed logins.
type LoginLockoutConfig struct {
	Attempts int
	Window   time.Duration
	Duration time.Duration
}

// BootstrapAdmin is created on startup when no administrator exists.
type BootstrapAdmin struct {
	Username string
	Password string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:               envOr("WELFARE_ADDR", ":8080"),
		Environment:        envOr("ENVIRONMENT", "local"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		SessionSigningKey:  os.Getenv("SESSION_SIGNING_KEY"),
		SessionTTL:         8 * time.Hour,
		ExpiringWindowDays: DefaultExpiringWindowDays,
		TrustedProxies:     os.Getenv("TRUSTED_PROXIES"),
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			Migrate:         os.Getenv("DATABASE_MIGRATE") != "false",
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:     os.Getenv("KAFKA_BROKERS"),
			EventsTopic: envOr("KAFKA_EVENTS_TOPIC", "welfare.events"),
		},
		LoginLockout: LoginLockoutConfig{
			Attempts: 5,
			Window:   15 * time.Minute,
			Duration: 15 * time.Minute,
		},
		BootstrapAdmin: BootstrapAdmin{
			Username: os.Getenv("BOOTSTRAP_ADMIN_USERNAME"),
			Password: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
		},
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Server{}, fmt.Errorf("SESSION_TTL: invalid duration %q", raw)
		}
		cfg.SessionTTL = d
	}
	if raw := os.Getenv("EXPIRING_WINDOW_DAYS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("EXPIRING_WINDOW_DAYS: must be a positive integer, got %q", raw)
		}
		cfg.ExpiringWindowDays = n
	}

	if raw := os.Getenv("LOGIN_LOCKOUT_ATTEMPTS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("LOGIN_LOCKOUT_ATTEMPTS: must be a positive integer, got %q", raw)
		}
		cfg.LoginLockout.Attempts = n
	}
	for name, dst := range map[string]*time.Duration{
		"LOGIN_LOCKOUT_WINDOW":   &cfg.LoginLockout.Window,
		"LOGIN_LOCKOUT_DURATION": &cfg.LoginLockout.Duration,
	} {
		if raw := os.Getenv(name); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil || d <= 0 {
				return Server{}, fmt.Errorf("%s: invalid duration %q", name, raw)
			}
			*dst = d
		}
	}

	if cfg.SessionSigningKey == "" {
		if cfg.IsProduction() {
			return Server{}, fmt.Errorf("SESSION_SIGNING_KEY is required in production")
		}
		cfg.SessionSigningKey = DevSigningKey
	}
	if cfg.SeedDemoData && cfg.IsProduction() {
		return Server{}, fmt.Errorf("SEED_DEMO_DATA is not allowed in production")
	}
	if cfg.BootstrapAdmin.Username != "" && cfg.BootstrapAdmin.Password == "" {
		return Server{}, fmt.Errorf("BOOTSTRAP_ADMIN_PASSWORD is required when BOOTSTRAP_ADMIN_USERNAME is set")
	}
	return cfg, nil
}

// IsProduction reports whether the process runs in production.
func (s Server) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
