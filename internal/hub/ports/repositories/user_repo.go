// Package repositories defines persistence interfaces for the hub service.
package repositories

import (
	"context"

	"agrohub/internal/hub/domain/entities"
)

// UserRepository defines the persistence operations on user records.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	List(ctx context.Context) ([]*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
