package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Auth  AuthConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

const defaultTokenTTL = 24 * time.Hour

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Mongo = MongoConfig{
		URI:      req("MONGO_URI"),
		Database: req("MONGO_DB"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:     req("JWT_SECRET"),
		TokenTTL:      parseTTL(opt("JWT_TTL")),
		AdminEmail:    req("ADMIN_EMAIL"),
		AdminPassword: req("ADMIN_PASSWORD"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.SMTP = SMTPConfig{
		Host:     opt("SMTP_HOST"),
		Port:     opt("SMTP_PORT"),
		Username: opt("SMTP_USERNAME"),
		Password: opt("SMTP_PASSWORD"),
		From:     opt("SMTP_FROM"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseTTL(raw string) time.Duration {
	if raw == "" {
		return defaultTokenTTL
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultTokenTTL
	}
	return d
}
