package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	svc "agrohub/internal/hub/ports/services"
)

const welcomeMessage = "Thank you for registering to Agro-Smart-Hub. We will contact you soon for the installation of the machine."

// Messenger dispatches the welcome chat message through a third-party
// messaging relay. The message goes to the registering user's own phone
// number.
type Messenger struct {
	relayURL string
	apiKey   string
	sender   string
	client   *http.Client
}

// NewMessenger creates a messaging relay client with a bounded timeout.
func NewMessenger(relayURL, apiKey, sender string, timeout time.Duration) svc.Messenger {
	return &Messenger{
		relayURL: relayURL,
		apiKey:   apiKey,
		sender:   sender,
		client:   &http.Client{Timeout: timeout},
	}
}

// SendWelcome posts the fixed welcome text to the relay.
func (m *Messenger) SendWelcome(ctx context.Context, phone string) error {
	form := url.Values{}
	form.Set("sender", m.sender)
	form.Set("mobile", phone)
	form.Set("msg", welcomeMessage)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.relayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to messaging relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("messaging relay error: status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
