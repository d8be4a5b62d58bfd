package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"agrohub/internal/hub/app/dto"
	"agrohub/internal/hub/ports/api"
	"agrohub/pkg/logger"
)

const (
	LogHandlerSensorData = "device handler: get sensor data"
	LogHandlerStartMotor = "device handler: start motor"

	pumpControlOn  = "YES"
	pumpControlOff = "NO"
)

// DeviceHandler contains the HTTP handlers of the device surface.
type DeviceHandler struct {
	device api.DeviceUseCase
}

// NewDeviceHandler creates a device handler.
func NewDeviceHandler(device api.DeviceUseCase) *DeviceHandler {
	return &DeviceHandler{device: device}
}

// GetSensorData polls the moisture sensor and reports the reading.
func (h *DeviceHandler) GetSensorData(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerSensorData)

	reading, err := h.device.ReadMoisture(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	if err := c.Status(http.StatusOK).JSON(fiber.Map{
		"data": fmt.Sprintf("Moisture Value: %s", reading),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// StartMotor toggles the pump. A pump_control value that is neither "YES" nor
// "NO" performs no device call but is still acknowledged with success; mobile
// clients depend on that contract.
func (h *DeviceHandler) StartMotor(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerStartMotor)

	var req dto.PumpControlRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(c, http.StatusBadRequest, MsgInvalidBody)
	}

	switch req.PumpControl {
	case pumpControlOn, pumpControlOff:
		if err := h.device.SetPump(requestCtx, req.PumpControl == pumpControlOn); err != nil {
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			status, message := mapDomainError(err)
			return sendMessage(c, status, message)
		}
	default:
		log.Warn(requestCtx, "unrecognized pump control value, device not called",
			zap.String("pump_control", req.PumpControl))
	}

	if err := c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": MsgMotorActivated,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
