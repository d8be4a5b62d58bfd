// Package api defines the use case interfaces exposed to the HTTP layer.
package api

import (
	"context"

	"agrohub/internal/hub/app/dto"
)

// UserUseCase covers the user identity and credential lifecycle.
type UserUseCase interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) error

	Login(ctx context.Context, email, password string) (string, error)

	GetUser(ctx context.Context, id string) (*dto.UserProfile, error)

	ListUsers(ctx context.Context) ([]*dto.UserProfile, error)

	UpdateUser(ctx context.Context, id string, fields dto.UpdateUserRequest) error

	DeleteUser(ctx context.Context, id string) error
}
