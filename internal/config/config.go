package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultDatabaseDSN = "traceability.db"

type Config struct {
	HTTPPort         string
	DatabaseDSN      string // SQLite file path, or a Postgres DSN
	CORSOrigins      string
	LogLevel         string
	LogFormat        string // text | json
	ReminderSchedule string // cron spec for the reminder check
	NotifyWebhookURL string // empty: notifications unsupported
	PhotoMaxBytes    int
	MetricsEnabled   bool
}

// Load reads the optional .env file, then the environment.
func Load() *Config {
	// .env is optional, a missing file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", defaultDatabaseDSN),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "@every 1m"),
		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		PhotoMaxBytes:    getEnvInt("PHOTO_MAX_BYTES", 5<<20),
		MetricsEnabled:   getEnvBool("METRICS_ENABLED", true),
	}

	return cfg
}

// Warn logs the settings that still carry development defaults.
func (c *Config) Warn(logger *slog.Logger) {
	if c.DatabaseDSN == defaultDatabaseDSN {
		logger.Warn("DATABASE_DSN not set, using local SQLite file", slog.String("path", c.DatabaseDSN))
	}
	if c.NotifyWebhookURL == "" {
		logger.Warn("NOTIFY_WEBHOOK_URL not set, reminders will not be delivered")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
