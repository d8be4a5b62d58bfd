package config

import "time"

// DeviceConfig holds the sensor/pump endpoint settings. BaseURL is the full
// device URL including a trailing slash; the control path is appended to it.
type DeviceConfig struct {
	BaseURL string        `yaml:"base_url" env:"HUB_DEVICE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"HUB_DEVICE_TIMEOUT" env-default:"10s"`
}
