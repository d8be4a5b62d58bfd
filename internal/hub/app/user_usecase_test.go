package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrohub/internal/hub/app"
	"agrohub/internal/hub/app/dto"
	"agrohub/internal/hub/domain/entities"
	"agrohub/internal/hub/domain/services"
	"agrohub/internal/hub/ports/api"
)

const (
	testFirstName = "Alice"
	testLastName  = "Walker"
	testEmail     = "alice@example.com"
	testPhone     = "+911234567890"
	testPassword  = "secret123"
	testHash      = "$2a$10$hashed"
	testUserID    = "aliwal0a1b2c3d"
)

func sampleUser() *entities.User {
	now := time.Now()
	return &entities.User{
		ID:           testUserID,
		FirstName:    testFirstName,
		LastName:     testLastName,
		Email:        testEmail,
		Phone:        testPhone,
		PasswordHash: testHash,
		Land:         []json.RawMessage{json.RawMessage(`{"crop":"wheat"}`)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newUserUseCase() (*mockUserRepository, *mockPasswordService, *mockTokenService, *mockMailer, *mockMessenger, func() api.UserUseCase) {
	repo := &mockUserRepository{}
	passwordSvc := &mockPasswordService{}
	tokenSvc := &mockTokenService{}
	mailer := &mockMailer{}
	messenger := &mockMessenger{}

	build := func() api.UserUseCase {
		return app.NewUserUseCase(repo, passwordSvc, tokenSvc, mailer, messenger)
	}

	return repo, passwordSvc, tokenSvc, mailer, messenger, build
}

func createRequest() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		FirstName: testFirstName,
		LastName:  testLastName,
		Email:     testEmail,
		Phone:     testPhone,
		Password:  testPassword,
	}
}

func waitFor(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for welcome notifications")
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success registers the user and dispatches notifications", func(t *testing.T) {
		repo, passwordSvc, _, mailer, messenger, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		passwordSvc.On("Hash", mock.Anything, testPassword).Return(testHash, nil).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return len(u.ID) == 14 && u.Email == testEmail && u.PasswordHash == testHash
		})).Return(sampleUser(), nil).Once()

		var wg sync.WaitGroup
		wg.Add(2)
		mailer.On("SendWelcome", mock.Anything, testEmail, testFirstName).
			Return(nil).Once().Run(func(mock.Arguments) { wg.Done() })
		messenger.On("SendWelcome", mock.Anything, testPhone).
			Return(nil).Once().Run(func(mock.Arguments) { wg.Done() })

		err := build().Register(ctx, createRequest())

		require.NoError(t, err)
		waitFor(t, &wg)
		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
		messenger.AssertExpectations(t)
	})

	t.Run("duplicate email is rejected before hashing", func(t *testing.T) {
		repo, passwordSvc, _, mailer, messenger, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(sampleUser(), nil).Once()

		err := build().Register(ctx, createRequest())

		require.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		passwordSvc.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
		messenger.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything)
	})

	t.Run("concurrent duplicate caught by the insert surfaces as a conflict", func(t *testing.T) {
		repo, passwordSvc, _, _, _, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		passwordSvc.On("Hash", mock.Anything, testPassword).Return(testHash, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).
			Return(nil, services.ErrEmailAlreadyExists).Once()

		err := build().Register(ctx, createRequest())

		require.ErrorIs(t, err, services.ErrEmailAlreadyExists)
	})

	t.Run("notification failures never fail the registration", func(t *testing.T) {
		repo, passwordSvc, _, mailer, messenger, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		passwordSvc.On("Hash", mock.Anything, testPassword).Return(testHash, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(sampleUser(), nil).Once()

		var wg sync.WaitGroup
		wg.Add(2)
		mailer.On("SendWelcome", mock.Anything, testEmail, testFirstName).
			Return(errors.New("smtp down")).Once().Run(func(mock.Arguments) { wg.Done() })
		messenger.On("SendWelcome", mock.Anything, testPhone).
			Return(errors.New("relay down")).Once().Run(func(mock.Arguments) { wg.Done() })

		err := build().Register(ctx, createRequest())

		require.NoError(t, err)
		waitFor(t, &wg)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns a token", func(t *testing.T) {
		repo, passwordSvc, tokenSvc, _, _, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(sampleUser(), nil).Once()
		passwordSvc.On("Verify", mock.Anything, testPassword, testHash).Return(true, nil).Once()
		tokenSvc.On("Generate", mock.Anything, testUserID).
			Return("access-token", time.Now().Add(15*time.Minute), nil).Once()

		token, err := build().Login(ctx, testEmail, testPassword)

		require.NoError(t, err)
		assert.Equal(t, "access-token", token)
	})

	t.Run("unknown email yields invalid credentials", func(t *testing.T) {
		repo, _, tokenSvc, _, _, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()

		_, err := build().Login(ctx, testEmail, testPassword)

		require.ErrorIs(t, err, services.ErrInvalidCredentials)
		tokenSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		repo, passwordSvc, tokenSvc, _, _, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(sampleUser(), nil).Once()
		passwordSvc.On("Verify", mock.Anything, "wrong", testHash).Return(false, nil).Once()

		_, err := build().Login(ctx, testEmail, "wrong")

		require.ErrorIs(t, err, services.ErrInvalidCredentials)
		tokenSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("token generation failure is surfaced", func(t *testing.T) {
		repo, passwordSvc, tokenSvc, _, _, build := newUserUseCase()

		repo.On("FindByEmail", mock.Anything, testEmail).Return(sampleUser(), nil).Once()
		passwordSvc.On("Verify", mock.Anything, testPassword, testHash).Return(true, nil).Once()
		tokenSvc.On("Generate", mock.Anything, testUserID).
			Return("", time.Time{}, services.ErrGeneratingToken).Once()

		_, err := build().Login(ctx, testEmail, testPassword)

		require.ErrorIs(t, err, services.ErrGeneratingToken)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the redacted profile", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("FindByID", mock.Anything, testUserID).Return(sampleUser(), nil).Once()

		profile, err := build().GetUser(ctx, testUserID)

		require.NoError(t, err)
		assert.Equal(t, testUserID, profile.ID)
		assert.Equal(t, testEmail, profile.Email)
		assert.Len(t, profile.Land, 1)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("FindByID", mock.Anything, "missing").Return(nil, entities.ErrUserNotFound).Once()

		_, err := build().GetUser(ctx, "missing")

		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all profiles with land never nil", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		bare := sampleUser()
		bare.ID = "bobsmi99aa88bb"
		bare.Land = nil
		repo.On("List", mock.Anything).Return([]*entities.User{sampleUser(), bare}, nil).Once()

		profiles, err := build().ListUsers(ctx)

		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.NotNil(t, profiles[1].Land)
		assert.Empty(t, profiles[1].Land)
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("List", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		_, err := build().ListUsers(ctx)

		require.Error(t, err)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites allow-listed fields and ignores the rest", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("FindByID", mock.Anything, testUserID).Return(sampleUser(), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.FirstName == "Alicia" &&
				u.Phone == "+919999999999" &&
				u.ID == testUserID &&
				u.PasswordHash == testHash
		})).Return(sampleUser(), nil).Once()

		fields := dto.UpdateUserRequest{
			"first_name": json.RawMessage(`"Alicia"`),
			"phone":      json.RawMessage(`"+919999999999"`),
			"id":         json.RawMessage(`"forged-id"`),
			"password":   json.RawMessage(`"new-secret"`),
		}

		err := build().UpdateUser(ctx, testUserID, fields)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("malformed values are skipped, the rest still apply", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("FindByID", mock.Anything, testUserID).Return(sampleUser(), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.LastName == "Waters" && u.Email == testEmail
		})).Return(sampleUser(), nil).Once()

		fields := dto.UpdateUserRequest{
			"last_name": json.RawMessage(`"Waters"`),
			"email":     json.RawMessage(`12345`),
		}

		err := build().UpdateUser(ctx, testUserID, fields)

		require.NoError(t, err)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("FindByID", mock.Anything, "missing").Return(nil, entities.ErrUserNotFound).Once()

		err := build().UpdateUser(ctx, "missing", dto.UpdateUserRequest{})

		require.ErrorIs(t, err, entities.ErrUserNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the record", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("Delete", mock.Anything, testUserID).Return(nil).Once()

		require.NoError(t, build().DeleteUser(ctx, testUserID))
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo, _, _, _, _, build := newUserUseCase()

		repo.On("Delete", mock.Anything, "missing").Return(entities.ErrUserNotFound).Once()

		require.ErrorIs(t, build().DeleteUser(ctx, "missing"), entities.ErrUserNotFound)
	})
}
