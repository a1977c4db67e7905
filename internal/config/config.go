package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration, read from the environment with
// development defaults.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	GeminiAPIKey string
	GeminiModel  string

	JWTSecret     string
	AdminUsername string
	AdminPassword string
}

// Load reads the environment. DATABASE_URL is the only hard requirement;
// everything else has a sensible development default. The Gemini key may
// stay empty here because the dashboard can store one at runtime.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin")

	cfg := Config{
		Port:          v.GetString("PORT"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}
