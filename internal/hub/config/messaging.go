package config

import "time"

// MessagingConfig holds the third-party chat relay settings. The message is
// addressed to the registering user's own phone number; the reference
// implementation hard-coded a single recipient, which was a defect.
type MessagingConfig struct {
	URL     string        `yaml:"url" env:"HUB_MSG_URL" env-required:"true"`
	APIKey  string        `yaml:"api_key" env:"HUB_MSG_API_KEY" env-required:"true"`
	Sender  string        `yaml:"sender" env:"HUB_MSG_SENDER" env-default:"AgroSmartHub"`
	Timeout time.Duration `yaml:"timeout" env:"HUB_MSG_TIMEOUT" env-default:"10s"`
}
