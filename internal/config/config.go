package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          int
	LogLevel      string
	ModelPath     string
	NatsURL       string
	NatsToken     string
	DatabaseURL   string
	ScoreJobLimit int
}

func Load() Config {
	return Config{
		Port:          envInt("RETAIN_PORT", 8460),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		ModelPath:     envStr("MODEL_PATH", "model/churn_model.json"),
		NatsURL:       envStr("NATS_URL", ""),
		NatsToken:     envStr("NATS_TOKEN", ""),
		DatabaseURL:   envStr("DATABASE_URL", ""),
		ScoreJobLimit: envInt("SCOREJOB_LIMIT", 1000),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
