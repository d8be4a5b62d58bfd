// Package services defines the service interfaces consumed by the use cases.
package services

import "context"

// PasswordService defines password hashing and verification.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
