package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	DBLogLevel             string
	RateLimit              int
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "0.0.0.0")
	appPort, err := getEnvAsInt("PORT", 3000)
	if err != nil {
		return Config{}, err
	}
	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 0)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%d", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "database.db"),
		DBLogLevel:             getEnv("DB_LOG_LEVEL", "warn"),
		RateLimit:              rateLimit,
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "task_list_rate"),
		ShutdownTimeoutSeconds: shutdownTimeout,
	}

	if err := validate(cfg, appPort); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config, port int) error {
	if port <= 0 || port > 65535 {
		return errors.New("PORT must be between 1 and 65535")
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if _, err := ParseLogLevel(cfg.DBLogLevel); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return i, nil
	}
	return defaultVal, nil
}
