package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port           string
	Env            string
	DatabaseURL    string
	RedisURL       string
	BackendAPIURL  string
	LogFile        string
	AllowedOrigins []string
}

// Production reports whether the process runs in a production-like
// environment; it gates the Secure flag on the locale cookie.
func (c Config) Production() bool {
	return c.Env == "production"
}

func Load() (Config, error) {
	cfg := Config{
		Port:           getenvDefault("PORT", "8080"),
		Env:            getenvDefault("APP_ENV", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       getenvDefault("REDIS_URL", "redis://localhost:6379"),
		BackendAPIURL:  os.Getenv("BACKEND_URL"),
		LogFile:        getenvDefault("LOG_FILE", "logs/server.log"),
		AllowedOrigins: parseList(getenvDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func parseList(val string) []string {
	parts := strings.Split(val, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
