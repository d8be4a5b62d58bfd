// Package app contains the use cases orchestrating repositories, credential
// services and gateways.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agrohub/internal/hub/app/dto"
	"agrohub/internal/hub/domain/entities"
	"agrohub/internal/hub/domain/services"
	"agrohub/internal/hub/ports/api"
	"agrohub/internal/hub/ports/repositories"
	svc "agrohub/internal/hub/ports/services"
	"agrohub/pkg/logger"
)

const (
	methodRegister   = "Register"
	methodLogin      = "Login"
	methodGetUser    = "GetUser"
	methodListUsers  = "ListUsers"
	methodUpdateUser = "UpdateUser"
	methodDeleteUser = "DeleteUser"

	msgStartRegistration   = "starting user registration"
	msgEmailExists         = "user with this email already exists"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgUserUpdated         = "user details updated successfully"
	msgUserDeleted         = "user deleted successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate access token"
	msgWelcomeEmailFailed   = "welcome email delivery failed"
	msgWelcomeMessageFailed = "welcome message delivery failed"

	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxGeneratingToken    = "generating token"
	errCtxListingUsers       = "listing users"
	errCtxUpdatingUser       = "updating user"
	errCtxDeletingUser       = "deleting user"
)

// updatableFields is the allow-list of keys a partial update may overwrite.
// The generated id is immutable and the password hash is only written through
// registration, so neither appears here. Unknown keys are silently ignored,
// matching the published API contract.
var updatableFields = map[string]struct{}{
	"first_name": {},
	"last_name":  {},
	"email":      {},
	"phone":      {},
	"land":       {},
}

// UserUseCaseImpl implements the UserUseCase interface.
type UserUseCaseImpl struct {
	userRepo      repositories.UserRepository
	passwordSvc   svc.PasswordService
	tokenSvc      svc.TokenService
	mailer        svc.Mailer
	messenger     svc.Messenger
	notifyTimeout time.Duration
}

// NewUserUseCase creates the user lifecycle use case.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	mailer svc.Mailer,
	messenger svc.Messenger,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:      userRepo,
		passwordSvc:   passwordSvc,
		tokenSvc:      tokenSvc,
		mailer:        mailer,
		messenger:     messenger,
		notifyTimeout: 30 * time.Second,
	}
}

// Register creates a new user: existence check, hash, persist, then
// best-effort notifications. The unique index on email backs up the check,
// so two concurrent registrations cannot both commit.
func (u *UserUseCaseImpl) Register(ctx context.Context, req *dto.CreateUserRequest) error {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", req.Email))
	log.Debug(ctx, msgStartRegistration)

	existingUser, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hashedPassword, err := u.passwordSvc.Hash(ctx, req.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		ID:           entities.NewUserID(req.FirstName, req.LastName),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Land:         req.Land,
	}

	createdUser, err := u.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return fmt.Errorf("%s: %w", errCtxEmailRegistered, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	u.dispatchWelcome(ctx, createdUser)

	return nil
}

// dispatchWelcome fires the welcome notifications without blocking the
// registration response. Each goroutine carries a detached timeout context so
// the end of the request does not cancel delivery. Failures are logged only.
func (u *UserUseCaseImpl) dispatchWelcome(ctx context.Context, user *entities.User) {
	notifyCtx := context.Background()
	if id, ok := logger.GetRequestID(ctx); ok {
		notifyCtx = logger.NewRequestIDContext(notifyCtx, id)
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(notifyCtx, u.notifyTimeout)
		defer cancel()
		if err := u.mailer.SendWelcome(sendCtx, user.Email, user.FirstName); err != nil {
			logger.Log(sendCtx).Warn(sendCtx, msgWelcomeEmailFailed,
				zap.Error(err), zap.String("userID", user.ID))
		}
	}()

	go func() {
		sendCtx, cancel := context.WithTimeout(notifyCtx, u.notifyTimeout)
		defer cancel()
		if err := u.messenger.SendWelcome(sendCtx, user.Phone); err != nil {
			logger.Log(sendCtx).Warn(sendCtx, msgWelcomeMessageFailed,
				zap.Error(err), zap.String("userID", user.ID))
		}
	}()
}

// Login authenticates a user by email and password and issues a bearer token.
func (u *UserUseCaseImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := u.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	token, _, err := u.tokenSvc.Generate(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return token, nil
}

// GetUser returns the redacted projection of one user.
func (u *UserUseCaseImpl) GetUser(ctx context.Context, id string) (*dto.UserProfile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUser), zap.String("userID", id))

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrFindingUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return toProfile(user), nil
}

// ListUsers returns the redacted projection of all users.
func (u *UserUseCaseImpl) ListUsers(ctx context.Context) ([]*dto.UserProfile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))

	users, err := u.userRepo.List(ctx)
	if err != nil {
		log.Error(ctx, errCtxListingUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}

	profiles := make([]*dto.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, toProfile(user))
	}

	return profiles, nil
}

// UpdateUser overwrites the allow-listed fields present in the partial
// payload. Keys outside the record's field set are silently ignored and a
// payload of only unknown keys still succeeds.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, id string, fields dto.UpdateUserRequest) error {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.String("userID", id))

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrFindingUser, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	applyUpdates(ctx, user, fields)

	if _, err := u.userRepo.Update(ctx, user); err != nil {
		log.Error(ctx, errCtxUpdatingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return nil
}

// DeleteUser removes a user record.
func (u *UserUseCaseImpl) DeleteUser(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.String("userID", id))

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, errCtxDeletingUser, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	log.Info(ctx, msgUserDeleted)
	return nil
}

func applyUpdates(ctx context.Context, user *entities.User, fields dto.UpdateUserRequest) {
	log := logger.Log(ctx)

	for key, raw := range fields {
		if _, ok := updatableFields[key]; !ok {
			log.Debug(ctx, "ignoring unknown update key", zap.String("key", key))
			continue
		}

		switch key {
		case "first_name":
			decodeString(ctx, raw, key, &user.FirstName)
		case "last_name":
			decodeString(ctx, raw, key, &user.LastName)
		case "email":
			decodeString(ctx, raw, key, &user.Email)
		case "phone":
			decodeString(ctx, raw, key, &user.Phone)
		case "land":
			var land []json.RawMessage
			if err := json.Unmarshal(raw, &land); err != nil {
				log.Debug(ctx, "ignoring malformed update value", zap.String("key", key), zap.Error(err))
				continue
			}
			user.Land = land
		}
	}
}

func decodeString(ctx context.Context, raw json.RawMessage, key string, dst *string) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Log(ctx).Debug(ctx, "ignoring malformed update value", zap.String("key", key), zap.Error(err))
		return
	}
	*dst = value
}

func toProfile(user *entities.User) *dto.UserProfile {
	land := user.Land
	if land == nil {
		land = []json.RawMessage{}
	}
	return &dto.UserProfile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Land:      land,
	}
}
