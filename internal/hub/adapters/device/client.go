// Package device implements the HTTP client for the soil-moisture sensor and
// irrigation pump endpoint.
package device

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"agrohub/internal/hub/domain/services"
	svc "agrohub/internal/hub/ports/services"
	"agrohub/pkg/logger"
)

// The device exposes two plain-HTTP GET endpoints: the base URL returns a
// whitespace-delimited reading, and "control?value=1|0" toggles the pump.
const (
	controlPath = "control?value="
	pumpOn      = "1"
	pumpOff     = "0"
)

// Client implements the DeviceGateway interface.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a device client. baseURL is used verbatim; the control
// path is appended to it, so it normally carries a trailing slash.
func NewClient(baseURL string, timeout time.Duration) svc.DeviceGateway {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ReadMoisture fetches the device response body and returns its first
// whitespace-delimited token.
func (c *Client) ReadMoisture(ctx context.Context) (string, error) {
	log := logger.Log(ctx).With(zap.String("device", "moisture"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating device request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn(ctx, "device request failed", zap.Error(err))
		return "", fmt.Errorf("reading moisture: %w: %w", services.ErrDeviceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn(ctx, "device returned unexpected status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("reading moisture: %w: status %d", services.ErrDeviceUnreachable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading moisture: %w: %w", services.ErrDeviceUnreachable, err)
	}

	tokens := strings.Fields(string(body))
	if len(tokens) == 0 {
		log.Warn(ctx, "device response body had no tokens")
		return "", fmt.Errorf("parsing device response: %w", services.ErrMalformedReading)
	}

	return tokens[0], nil
}

// SetPump requests the pump state. Any successful round trip is treated as an
// acknowledgment; the device state is not read back. Because the request
// carries an absolute value rather than a toggle, repeating it is idempotent.
func (c *Client) SetPump(ctx context.Context, on bool) error {
	log := logger.Log(ctx).With(zap.String("device", "pump"), zap.Bool("on", on))

	value := pumpOff
	if on {
		value = pumpOn
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+controlPath+value, nil)
	if err != nil {
		return fmt.Errorf("creating pump request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn(ctx, "pump request failed", zap.Error(err))
		return fmt.Errorf("setting pump: %w: %w", services.ErrDeviceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn(ctx, "pump control returned unexpected status", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("setting pump: %w: status %d", services.ErrDeviceUnreachable, resp.StatusCode)
	}

	log.Info(ctx, "pump state requested")
	return nil
}
