package config

import (
	"log"
	"os"
	"strconv"
)

const (
	defaultDBPath        = "./candles.db"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultHistoryKey    = "candle_calc_history_v2"
	defaultMaxImageBytes = 5 << 20
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath        string
	Port          string
	LogLevel      string
	HistoryKey    string
	MaxImageBytes int64
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: a missing .env is fine, real deployments inject env directly.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: read .env: %v", err)
	}

	return Config{
		DBPath:        getEnv("DB_PATH", defaultDBPath),
		Port:          getEnv("PORT", defaultPort),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		HistoryKey:    getEnv("HISTORY_KEY", defaultHistoryKey),
		MaxImageBytes: getEnvInt64("MAX_IMAGE_BYTES", defaultMaxImageBytes),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		log.Printf("warning: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}
