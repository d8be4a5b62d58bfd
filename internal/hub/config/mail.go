package config

// MailConfig holds the outbound SMTP relay settings. Port 465 implies
// implicit TLS, matching the reference deployment.
type MailConfig struct {
	Host     string `yaml:"host" env:"HUB_MAIL_HOST" env-required:"true"`
	Port     int    `yaml:"port" env:"HUB_MAIL_PORT" env-default:"465"`
	Username string `yaml:"username" env:"HUB_MAIL_USERNAME" env-required:"true"`
	Password string `yaml:"password" env:"HUB_MAIL_PASSWORD" env-required:"true"`
	From     string `yaml:"from" env:"HUB_MAIL_FROM" env-default:""`
}

// GetFrom returns the sender identity, falling back to the SMTP username.
func (c *MailConfig) GetFrom() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}
