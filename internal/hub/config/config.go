// Package config contains the hub service configuration, loaded from
// environment variables. Required values abort startup when absent.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"agrohub/pkg/logger"
)

// Log and error messages.
const (
	LogLoadingConfig    = "loading hub service configuration"
	LogConfigLoaded     = "configuration loaded successfully"
	ErrFailedLoadConfig = "failed to load configuration"
)

// Config is the full application configuration.
type Config struct {
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	JWT       JWTConfig
	Mail      MailConfig
	Messaging MessagingConfig
	Device    DeviceConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	Shutdown  ShutdownConfig
}

// Load reads the configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("device_url", cfg.Device.BaseURL),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return &cfg, nil
}
