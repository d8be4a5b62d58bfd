package services

import "context"

// DeviceGateway talks to the soil-moisture sensor and irrigation pump over
// the configured device endpoint.
type DeviceGateway interface {
	// ReadMoisture returns the first token of the device response body.
	ReadMoisture(ctx context.Context) (string, error)

	// SetPump requests the pump state. The device acknowledgment is not
	// verified; any successful round trip counts as an ack.
	SetPump(ctx context.Context, on bool) error
}
