package services

import (
	"context"
	"time"
)

// TokenService defines issuing and validating bearer tokens bound to a user id.
type TokenService interface {
	Generate(ctx context.Context, userID string) (string, time.Time, error)

	Validate(ctx context.Context, token string) (string, error)
}
