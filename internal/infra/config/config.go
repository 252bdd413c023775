package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and never mutated afterwards. The
// signing secret lives here and is handed only to the token codec.
type Config struct {
	DatabaseURL string
	HTTPAddr    string

	SecretKey                string
	AccessTokenExpireMinutes int
	RefreshTokenExpireDays   int

	AllowedOrigins   []string
	AllowCredentials bool
	LogLevel         string
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpireDays) * 24 * time.Hour
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	for _, key := range []string{
		"DATABASE_URL", "HTTP_ADDR", "SECRET_KEY",
		"ACCESS_TOKEN_EXPIRE_MINUTES", "REFRESH_TOKEN_EXPIRE_DAYS",
		"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS", "LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:              v.GetString("DATABASE_URL"),
		HTTPAddr:                 v.GetString("HTTP_ADDR"),
		SecretKey:                v.GetString("SECRET_KEY"),
		AccessTokenExpireMinutes: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		RefreshTokenExpireDays:   v.GetInt("REFRESH_TOKEN_EXPIRE_DAYS"),
		AllowedOrigins:           v.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:         v.GetBool("ALLOW_CREDENTIALS"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters long")
	}
	if cfg.AccessTokenExpireMinutes < 1 || cfg.AccessTokenExpireMinutes > 1440 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be between 1 and 1440")
	}
	if cfg.RefreshTokenExpireDays < 1 {
		return nil, fmt.Errorf("REFRESH_TOKEN_EXPIRE_DAYS must be at least 1")
	}

	return cfg, nil
}
