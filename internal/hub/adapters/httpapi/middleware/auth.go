// Package middleware contains the HTTP middleware of the hub service.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "agrohub/internal/hub/ports/services"
	"agrohub/pkg/logger"
)

// UserIDKey is the fiber locals key carrying the authenticated user id.
const UserIDKey = "userID"

// MsgUnauthorized is the stable body message for failed authentication.
const MsgUnauthorized = "Missing or invalid token"

const bearerPrefix = "Bearer "

// NewAuthMiddleware validates the bearer token on protected routes and stores
// the token subject in the request locals.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := c.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, "missing or malformed authorization header")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": MsgUnauthorized,
			})
		}

		userID, err := tokenSvc.Validate(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, "token validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": MsgUnauthorized,
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
