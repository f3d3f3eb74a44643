package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs at startup. Values come
// from the environment, with a .env file loaded first when present.
type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	RedisURL    string

	RabbitURL      string
	RabbitExchange string

	AdminAPIKey string

	DefaultRadiusKm float64

	CacheTTLDetails time.Duration
	CacheTTLList    time.Duration

	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		RabbitURL:      os.Getenv("RABBIT_URL"),
		RabbitExchange: getEnv("RABBIT_EXCHANGE", "evento.moderation"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		DefaultRadiusKm: getFloat("DEFAULT_RADIUS_KM", 20),

		CacheTTLDetails: getDuration("CACHE_TTL_DETAILS", 5*time.Minute),
		CacheTTLList:    getDuration("CACHE_TTL_LIST", 15*time.Second),

		RLEnabled: getBool("RL_ENABLED", true),
		RLLimit:   getInt("RL_IP_LIMIT", 120),
		RLWindow:  getDuration("RL_IP_WINDOW", time.Minute),

		ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY is required")
	}
	if cfg.AppEnv != "development" && cfg.RabbitURL == "" {
		return nil, fmt.Errorf("RABBIT_URL is required outside development")
	}
	if cfg.DefaultRadiusKm <= 0 {
		return nil, fmt.Errorf("DEFAULT_RADIUS_KM must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
