package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	DatabasePath string
	SecretKey    string
	CookieSecure bool
	Timezone     string
	LogLevel     string
}

// Load reads configuration from environment variables with sane local
// defaults. SECRET_KEY has a development fallback; deployments are expected
// to override it.
func Load() Config {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", "data/medwatch.db")
	v.SetDefault("SECRET_KEY", "dev-insecure-secret-key")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("TZ", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	return Config{
		Port:         strings.TrimSpace(v.GetString("PORT")),
		DatabasePath: strings.TrimSpace(v.GetString("DB_PATH")),
		SecretKey:    v.GetString("SECRET_KEY"),
		CookieSecure: v.GetBool("COOKIE_SECURE"),
		Timezone:     strings.TrimSpace(v.GetString("TZ")),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
	}
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown.
func (config Config) Location() *time.Location {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
