package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"agrohub/internal/hub/domain/entities"
	"agrohub/internal/hub/domain/services"
)

// Stable client-facing messages. Internal error detail never crosses the API
// boundary.
const (
	MsgFieldsMissing      = "Fields are missing"
	MsgInvalidBody        = "Invalid request body"
	MsgUserExists         = "User already exists"
	MsgUserNotFound       = "User not found"
	MsgInvalidCredentials = "Invalid email or password"
	MsgUserAdded          = "User added successfully"
	MsgUserUpdated        = "User details updated successfully"
	MsgUserDeleted        = "User deleted successfully"
	MsgMotorActivated     = "Motor activated successfully"
	MsgDeviceUnavailable  = "Device unavailable"
	MsgInternalError      = "Internal server error"
)

func sendMessage(c fiber.Ctx, statusCode int, message string) error {
	if err := c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// mapDomainError translates domain sentinels to the response contract.
// Anything unrecognized is an infrastructure failure and comes back as a
// generic server error.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound, MsgUserNotFound
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusBadRequest, MsgUserExists
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, MsgInvalidCredentials
	case errors.Is(err, services.ErrDeviceUnreachable),
		errors.Is(err, services.ErrMalformedReading):
		return http.StatusBadGateway, MsgDeviceUnavailable
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}
