// Package httpapi contains the HTTP surface of the hub service.
package httpapi

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"agrohub/internal/hub/adapters/httpapi/middleware"
	"agrohub/internal/hub/ports/api"
	svc "agrohub/internal/hub/ports/services"
)

// SetupRouter wires the route table. Paths and status quirks follow the
// published API contract; existing mobile clients depend on them.
func SetupRouter(app *fiber.App, users api.UserUseCase, device api.DeviceUseCase, tokenSvc svc.TokenService) {
	userHandler := NewUserHandler(users)
	deviceHandler := NewDeviceHandler(device)

	app.Use(cors.New())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/get-users", userHandler.ListUsers)
	app.Post("/create-users", userHandler.CreateUser)
	app.Post("/login", userHandler.Login)
	app.Put("/update-user/:id", userHandler.UpdateUser)
	app.Get("/get-user/:id", userHandler.GetUser)
	app.Delete("/delete-user/:id", userHandler.DeleteUser)

	app.Get("/get-sensor-data", deviceHandler.GetSensorData)
	app.Post("/start-motor", deviceHandler.StartMotor)

	app.Get("/protected", userHandler.Protected, middleware.NewAuthMiddleware(tokenSvc))

	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		})
	})
}
