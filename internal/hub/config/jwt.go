package config

import "time"

// JWTConfig holds the token signing settings. The reference behavior had no
// expiry at all; a finite default is deliberate.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"HUB_JWT_SECRET_KEY" env-required:"true"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"HUB_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"HUB_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL returns the access token lifetime.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return duration
}
