package api

import "context"

// DeviceUseCase covers the sensor read and pump control operations.
type DeviceUseCase interface {
	ReadMoisture(ctx context.Context) (string, error)

	SetPump(ctx context.Context, on bool) error
}
