package config

import "time"

// ShutdownConfig holds the graceful shutdown settings.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"HUB_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout returns the shutdown timeout as a time.Duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
