package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: scheduler.db)
	Timezone     string // Optional: IANA zone drafts are composed in (default: UTC)
	SeedFile     string // Optional: JSON households file applied on serve start

	Issuer              string        // Optional: expected token issuer (default: bartab-auth)
	Audience            []string      // Optional: accepted token audiences, comma separated
	JWKSURL             string        // One of JWKSURL or JWKSFile is required
	JWKSFile            string        // Static JWKS document, takes precedence over JWKSURL
	JWKSRefreshInterval time.Duration // Optional: how often JWKSURL is re-fetched (default: 15m)

	PushEndpoint    string        // Optional: push send URL (default: Expo)
	PushAccessToken string        // Optional: bearer token for the push service
	PushTimeout     time.Duration // Optional: per-request push timeout (default: 10s)

	DispatchTimeout   time.Duration // Optional: bound on one notification fan-out (default: 30s)
	DispatchRetention time.Duration // Optional: how long dispatch rows are kept (default: 30 days)

	RedisAddr      string        // Optional: enables Idempotency-Key support on event submission
	RedisPassword  string        // Optional
	RedisDB        int           // Optional (default: 0)
	IdempotencyTTL time.Duration // Optional: replay window for idempotent submissions (default: 24h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile: getEnvOrDefault("SCHEDULER_DATABASE_FILE", "scheduler.db"),
		Timezone:     getEnvOrDefault("SCHEDULER_TIMEZONE", "UTC"),
		SeedFile:     os.Getenv("SCHEDULER_SEED_FILE"),

		Issuer:              getEnvOrDefault("AUTH_ISSUER", "bartab-auth"),
		Audience:            splitList(os.Getenv("AUTH_AUDIENCE")),
		JWKSURL:             os.Getenv("AUTH_JWKS_URL"),
		JWKSFile:            os.Getenv("AUTH_JWKS_FILE"),
		JWKSRefreshInterval: getEnvDurationOrDefault("AUTH_JWKS_REFRESH_INTERVAL", 15*time.Minute),

		PushEndpoint:    os.Getenv("PUSH_ENDPOINT"),
		PushAccessToken: os.Getenv("PUSH_ACCESS_TOKEN"),
		PushTimeout:     getEnvDurationOrDefault("PUSH_TIMEOUT", 10*time.Second),

		DispatchTimeout:   getEnvDurationOrDefault("DISPATCH_TIMEOUT", 30*time.Second),
		DispatchRetention: getEnvDurationOrDefault("DISPATCH_RETENTION", 30*24*time.Hour),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvIntOrDefault("REDIS_DB", 0),
		IdempotencyTTL: getEnvDurationOrDefault("IDEMPOTENCY_TTL", 24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
