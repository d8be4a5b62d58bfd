package config

import (
	"strconv"
	"time"
)

// RedisConfig is the configuration of the sensor-reading cache.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"HUB_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"HUB_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"HUB_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"HUB_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"HUB_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"HUB_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"HUB_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	SensorTTL      time.Duration `yaml:"sensor_ttl" env:"HUB_REDIS_SENSOR_TTL" env-default:"10s"`
}

// GetAddress returns the Redis address.
func (c *RedisConfig) GetAddress() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
