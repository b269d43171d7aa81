package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	DBPath        string
	TelegramToken string
	LogLevel      string
	WorkerCount   int
	WorkerQueue   int
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "shifts.db"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.WorkerCount, err = getEnvInt("WORKER_COUNT", 4); err != nil {
		return nil, err
	}
	if cfg.WorkerQueue, err = getEnvInt("WORKER_QUEUE", 32); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireTelegram fails when no bot token is configured.
func (c *Config) RequireTelegram() error {
	if c.TelegramToken == "" {
		return ErrNoToken{}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set"
}
