package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrohub/internal/hub/app"
	"agrohub/internal/hub/domain/services"
)

func TestReadMoisture(t *testing.T) {
	ctx := context.Background()

	t.Run("cached reading is served without polling the device", func(t *testing.T) {
		gateway := &mockDeviceGateway{}
		cache := &mockSensorCache{}
		cache.On("Get", mock.Anything).Return("512", nil).Once()

		reading, err := app.NewDeviceUseCase(gateway, cache).ReadMoisture(ctx)

		require.NoError(t, err)
		assert.Equal(t, "512", reading)
		gateway.AssertNotCalled(t, "ReadMoisture", mock.Anything)
	})

	t.Run("cache miss polls the device and stores the reading", func(t *testing.T) {
		gateway := &mockDeviceGateway{}
		cache := &mockSensorCache{}
		cache.On("Get", mock.Anything).Return("", nil).Once()
		gateway.On("ReadMoisture", mock.Anything).Return("487", nil).Once()
		cache.On("Set", mock.Anything, "487").Return(nil).Once()

		reading, err := app.NewDeviceUseCase(gateway, cache).ReadMoisture(ctx)

		require.NoError(t, err)
		assert.Equal(t, "487", reading)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure degrades to a direct device poll", func(t *testing.T) {
		gateway := &mockDeviceGateway{}
		cache := &mockSensorCache{}
		cache.On("Get", mock.Anything).Return("", errors.New("connection refused")).Once()
		gateway.On("ReadMoisture", mock.Anything).Return("487", nil).Once()
		cache.On("Set", mock.Anything, "487").Return(errors.New("connection refused")).Once()

		reading, err := app.NewDeviceUseCase(gateway, cache).ReadMoisture(ctx)

		require.NoError(t, err)
		assert.Equal(t, "487", reading)
	})

	t.Run("unreachable device is surfaced", func(t *testing.T) {
		gateway := &mockDeviceGateway{}
		cache := &mockSensorCache{}
		cache.On("Get", mock.Anything).Return("", nil).Once()
		gateway.On("ReadMoisture", mock.Anything).Return("", services.ErrDeviceUnreachable).Once()

		_, err := app.NewDeviceUseCase(gateway, cache).ReadMoisture(ctx)

		require.ErrorIs(t, err, services.ErrDeviceUnreachable)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}

func TestSetPump(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the requested state", func(t *testing.T) {
		gateway := &mockDeviceGateway{}
		cache := &mockSensorCache{}
		gateway.On("SetPump", mock.Anything, true).Return(nil).Once()

		require.NoError(t, app.NewDeviceUseCase(gateway, cache).SetPump(ctx, true))
		gateway.AssertExpectations(t)
	})

	t.Run("device failure is surfaced", func(t *testing.T) {
		gateway := &mockDeviceGateway{}
		cache := &mockSensorCache{}
		gateway.On("SetPump", mock.Anything, false).Return(services.ErrDeviceUnreachable).Once()

		err := app.NewDeviceUseCase(gateway, cache).SetPump(ctx, false)

		require.ErrorIs(t, err, services.ErrDeviceUnreachable)
	})
}
