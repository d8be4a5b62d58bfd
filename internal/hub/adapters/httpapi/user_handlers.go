package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"agrohub/internal/hub/adapters/httpapi/middleware"
	"agrohub/internal/hub/app/dto"
	"agrohub/internal/hub/ports/api"
	"agrohub/pkg/logger"
)

// Handler log messages.
const (
	LogHandlerListUsers  = "user handler: list users"
	LogHandlerCreateUser = "user handler: create user"
	LogHandlerLogin      = "user handler: login"
	LogHandlerGetUser    = "user handler: get user"
	LogHandlerUpdateUser = "user handler: update user"
	LogHandlerDeleteUser = "user handler: delete user"
	LogHandlerProtected  = "user handler: protected probe"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// UserHandler contains the HTTP handlers of the user lifecycle.
type UserHandler struct {
	users api.UserUseCase
}

// NewUserHandler creates a user handler.
func NewUserHandler(users api.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers returns all users as redacted projections.
func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerListUsers)

	profiles, err := h.users.ListUsers(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	if err := c.Status(http.StatusOK).JSON(fiber.Map{"users": profiles}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// CreateUser handles registration. Missing required fields fail fast with the
// contract's 404 before any persistence or side effect.
func (h *UserHandler) CreateUser(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerCreateUser)

	var req dto.CreateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(c, http.StatusBadRequest, MsgInvalidBody)
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return sendMessage(c, http.StatusNotFound, MsgFieldsMissing)
	}

	if err := h.users.Register(requestCtx, &req); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	return sendMessage(c, http.StatusOK, MsgUserAdded)
}

// Login authenticates and returns a bearer token.
func (h *UserHandler) Login(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(c, http.StatusBadRequest, MsgInvalidBody)
	}

	if req.Email == "" || req.Password == "" {
		return sendMessage(c, http.StatusNotFound, MsgFieldsMissing)
	}

	token, err := h.users.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	if err := c.Status(http.StatusOK).JSON(dto.LoginResponse{AccessToken: token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetUser returns one user as a redacted projection.
func (h *UserHandler) GetUser(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerGetUser)

	profile, err := h.users.GetUser(requestCtx, c.Params("id"))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	if err := c.Status(http.StatusOK).JSON(fiber.Map{"user": profile}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateUser applies a partial field map to a stored record.
func (h *UserHandler) UpdateUser(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerUpdateUser)

	var fields dto.UpdateUserRequest
	if err := c.Bind().JSON(&fields); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(c, http.StatusBadRequest, MsgInvalidBody)
	}

	if err := h.users.UpdateUser(requestCtx, c.Params("id"), fields); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	return sendMessage(c, http.StatusOK, MsgUserUpdated)
}

// DeleteUser performs a hard delete by id.
func (h *UserHandler) DeleteUser(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerDeleteUser)

	if err := h.users.DeleteUser(requestCtx, c.Params("id")); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		status, message := mapDomainError(err)
		return sendMessage(c, status, message)
	}

	return sendMessage(c, http.StatusOK, MsgUserDeleted)
}

// Protected reports the identity bound to the presented token.
func (h *UserHandler) Protected(c fiber.Ctx) error {
	requestCtx := c.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerProtected)

	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return sendMessage(c, http.StatusUnauthorized, middleware.MsgUnauthorized)
	}

	if err := c.Status(http.StatusOK).JSON(fiber.Map{"logged_in_as": userID}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
