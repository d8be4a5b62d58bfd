package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"agrohub/pkg/logger"
)

// NewRecoveryMiddleware recovers from handler panics and answers with a
// generic server error.
func NewRecoveryMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := c.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				log.Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(stack)),
				)

				if err := c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Internal server error",
				}); err != nil {
					log.Error(requestCtx, "Failed to send error response after panic", zap.Error(err))
				}
			}
		}()

		return c.Next()
	}
}
