// Package config loads the service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	// DefaultCulture is used when a request names no supported locale.
	DefaultCulture string
}

// ServerConfig holds the HTTP listen address and runtime environment.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig selects the gorm driver and its connection string.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// RabbitMQConfig is disabled when URL is empty.
type RabbitMQConfig struct {
	URL string
}

// Enabled reports whether stock alerts should be published.
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "carpetstore.db?_foreign_keys=on")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("DEFAULT_CULTURE", "en")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("DB_DRIVER"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: v.GetString("RABBITMQ_URL"),
		},
		DefaultCulture: v.GetString("DEFAULT_CULTURE"),
	}

	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}
