package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	JWTSecret     string
	JWTExpiry     time.Duration
	AdminKeyHash  string
	GenerateRPS   float64
	GenerateBurst int
}

// Load reads the configuration from the environment and exits if it is unsafe to run.
func Load() Config {
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	e := env{getenv: getenv}
	cfg := Config{
		Port:          e.str("PORT", "8080"),
		Env:           e.str("ENV", "development"),
		DatabaseDSN:   e.str("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		JWTSecret:     e.str("JWT_SECRET", devJWTSecret),
		JWTExpiry:     e.duration("JWT_EXPIRY", time.Hour),
		AdminKeyHash:  e.str("ADMIN_KEY_HASH", ""),
		GenerateRPS:   e.number("GENERATE_RPS", 10),
		GenerateBurst: e.integer("GENERATE_BURST", 20),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}

	return cfg, nil
}

type env struct {
	getenv func(string) string
}

func (e env) str(key, fallback string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return fallback
}

func (e env) integer(key string, fallback int) int {
	v, err := strconv.Atoi(e.getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (e env) number(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(e.getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (e env) duration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(e.getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
