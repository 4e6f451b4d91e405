package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from flags, environment and an optional .env file.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	JWTSecret        string
	TokenTTL         time.Duration
	ShutdownTimeout  time.Duration
	Environment      string
	LogLevel         string
	NotifyWorkers    int
	NotifyQueueSize  int
	NotifyTimeout    time.Duration
	SMTP             SMTPConfig
	CORSAllowOrigins []string
	RateLimitRPS     float64
	RateLimitBurst   int
	OverdueSchedule  string
}

// SMTPConfig describes the outbound mail relay. An empty Host disables SMTP delivery.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Production reports whether the service runs with production cookie settings.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LogValue renders the configuration for logs with credentials left out.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_address", c.RunAddress),
		slog.String("storage", storageKind(c.DatabaseURI)),
		slog.Duration("token_ttl", c.TokenTTL),
		slog.String("environment", c.Environment),
		slog.String("log_level", c.LogLevel),
		slog.Int("notify_workers", c.NotifyWorkers),
		slog.Int("notify_queue_size", c.NotifyQueueSize),
		slog.Bool("smtp", c.SMTP.Host != ""),
		slog.Any("cors_origins", c.CORSAllowOrigins),
		slog.Float64("rate_limit_rps", c.RateLimitRPS),
		slog.Int("rate_limit_burst", c.RateLimitBurst),
		slog.String("overdue_schedule", c.OverdueSchedule),
	)
}

func storageKind(dsn string) string {
	if strings.TrimSpace(dsn) == "" {
		return "unset"
	}
	return DatabaseKind(dsn)
}

// DatabaseKind names the storage engine a DSN selects: "mongodb" for
// mongodb:// and mongodb+srv:// URIs, "postgres" for anything else.
func DatabaseKind(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "mongodb://") || strings.HasPrefix(lower, "mongodb+srv://") {
		return "mongodb"
	}
	return "postgres"
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultEnvironment     = "development"
	defaultLogLevel        = "info"
	defaultNotifyWorkers   = 2
	defaultNotifyQueueSize = 64
	defaultNotifyTimeout   = 15 * time.Second
	defaultSMTPPort        = 587
	defaultCORSOrigins     = "http://localhost:3000"
	defaultRateLimitRPS    = 5
	defaultRateLimitBurst  = 10
	defaultOverdueSchedule = "0 */15 * * * *"
	defaultEnvFile         = ".env"
)

// Load parses configuration from flags and environment variables. Values from
// the file named by ENV_FILE (default .env) fill in variables the process
// environment does not set.
func Load() (*Config, error) {
	lookup, err := withDotenv(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

func withDotenv(base envLookup) (envLookup, error) {
	path := defaultEnvFile
	if v, ok := base("ENV_FILE"); ok && v != "" {
		path = v
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		Environment:     getString(lookup, "APP_ENV", defaultEnvironment),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		NotifyWorkers:   getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize: getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyTimeout:   getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		SMTP: SMTPConfig{
			Host:     getString(lookup, "SMTP_HOST", ""),
			Port:     getInt(lookup, "SMTP_PORT", defaultSMTPPort),
			User:     getString(lookup, "SMTP_USER", ""),
			Password: getString(lookup, "SMTP_PASSWORD", ""),
			From:     getString(lookup, "MAIL_FROM", ""),
		},
		RateLimitRPS:    getFloat(lookup, "RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst:  getInt(lookup, "RATE_LIMIT_BURST", defaultRateLimitBurst),
		OverdueSchedule: getString(lookup, "OVERDUE_SWEEP_SCHEDULE", defaultOverdueSchedule),
	}

	flags := flag.NewFlagSet("foodbridge", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		corsOrigins        = getString(lookup, "CORS_ALLOW_ORIGINS", defaultCORSOrigins)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL or MongoDB connection URI")
	flags.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing session tokens")
	flags.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Session token lifetime")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent notification workers")
	flags.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	flags.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")
	flags.StringVar(&cfg.OverdueSchedule, "overdue-schedule", cfg.OverdueSchedule, "Cron spec of the overdue pickup sweep")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowOrigins = splitList(corsOrigins)
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = splitList(defaultCORSOrigins)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	if cfg.SMTP.Port <= 0 {
		cfg.SMTP.Port = defaultSMTPPort
	}

	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = defaultRateLimitRPS
	}

	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = defaultRateLimitBurst
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
