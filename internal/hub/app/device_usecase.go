package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agrohub/internal/hub/ports/api"
	svc "agrohub/internal/hub/ports/services"
	"agrohub/pkg/logger"
)

const (
	methodReadMoisture = "ReadMoisture"
	methodSetPump      = "SetPump"

	msgServingCachedReading = "serving cached moisture reading"
	msgSensorCacheGetFailed = "sensor cache read failed, polling device"
	msgSensorCacheSetFailed = "failed to cache moisture reading"

	errCtxReadingMoisture = "reading moisture"
	errCtxSettingPump     = "setting pump"
)

// DeviceUseCaseImpl implements the DeviceUseCase interface.
type DeviceUseCaseImpl struct {
	gateway svc.DeviceGateway
	cache   svc.SensorCache
}

// NewDeviceUseCase creates the device use case.
func NewDeviceUseCase(gateway svc.DeviceGateway, cache svc.SensorCache) api.DeviceUseCase {
	return &DeviceUseCaseImpl{gateway: gateway, cache: cache}
}

// ReadMoisture returns the latest moisture reading. A value cached within the
// configured TTL is served without touching the device; cache failures
// degrade to a direct device poll.
func (d *DeviceUseCaseImpl) ReadMoisture(ctx context.Context) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodReadMoisture))

	cached, err := d.cache.Get(ctx)
	if err != nil {
		log.Warn(ctx, msgSensorCacheGetFailed, zap.Error(err))
	} else if cached != "" {
		log.Debug(ctx, msgServingCachedReading)
		return cached, nil
	}

	reading, err := d.gateway.ReadMoisture(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxReadingMoisture, err)
	}

	if err := d.cache.Set(ctx, reading); err != nil {
		log.Warn(ctx, msgSensorCacheSetFailed, zap.Error(err))
	}

	return reading, nil
}

// SetPump forwards the pump request to the device gateway.
func (d *DeviceUseCaseImpl) SetPump(ctx context.Context, on bool) error {
	log := logger.Log(ctx).With(zap.String("method", methodSetPump), zap.Bool("on", on))

	if err := d.gateway.SetPump(ctx, on); err != nil {
		log.Error(ctx, errCtxSettingPump, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxSettingPump, err)
	}

	return nil
}
